// Package encryption implements the Minecraft protocol's legacy
// connection encryption: AES-128 in CFB8 mode, with the 16-byte shared
// secret reused as both key and IV.
//
// Reusing the key as the IV weakens the scheme, and that is not this
// package's call to make: the wire protocol mandates it, and a cipher
// seeded any other way cannot talk to a vanilla peer. Treat it as a
// compatibility requirement, not a recommendation.
package encryption

import (
	"crypto/aes"
	"fmt"
)

// Mode fixes a Cipher's direction at construction.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

// secretLength is the shared secret size the protocol mandates (AES-128).
const secretLength = 16

// newBlockCipher constructs the backend block cipher. Package variable
// so tests can simulate backend initialization failure.
var newBlockCipher = aes.NewCipher

// Cipher is one direction of a connection's AES/CFB8 stream.
//
// A Cipher is exclusively owned: Process calls against it must come
// from a single logical stream in order, and it performs no internal
// locking. Close releases it; a connection needs a fresh pair of
// Ciphers, one per direction, and there is no rekey.
type Cipher struct {
	stream *cfb8
	mode   Mode
}

// NewCipher creates a cipher for one direction of a stream. The secret
// must be exactly 16 bytes; per the protocol it seeds both the AES key
// and the feedback register.
//
// Fails with ErrInvalidKeyLength before touching the backend if the
// secret has the wrong size, and with ErrBackendInit if the backend
// rejects it. No state is retained on any failure path.
func NewCipher(secret []byte, mode Mode) (*Cipher, error) {
	if len(secret) != secretLength {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKeyLength, len(secret))
	}

	block, err := newBlockCipher(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
	}

	return &Cipher{
		stream: newCFB8(block, secret, mode),
		mode:   mode,
	}, nil
}

// Mode reports the direction the cipher was constructed for.
func (c *Cipher) Mode() Mode { return c.mode }

// Process transforms exactly len(src) bytes into dst, advancing the
// keystream so the next call continues the same logical stream. dst and
// src may be the same slice (in-place transformation); a zero-length
// src is a no-op. Panics if dst is shorter than src, matching the
// crypto/cipher convention.
//
// Returns ErrCipherClosed once the cipher has been closed or has hit a
// fatal backend failure.
func (c *Cipher) Process(dst, src []byte) error {
	if c.stream == nil {
		return ErrCipherClosed
	}
	if len(dst) < len(src) {
		panic("encryption: output buffer smaller than input")
	}
	c.stream.XORKeyStream(dst[:len(src)], src)
	return nil
}

// Close releases the cipher and zeroes its feedback register. The
// cipher cannot be used afterward; calling Close again is a no-op.
func (c *Cipher) Close() error {
	if c.stream == nil {
		return nil
	}
	for i := range c.stream.iv {
		c.stream.iv[i] = 0
	}
	c.stream = nil
	return nil
}
