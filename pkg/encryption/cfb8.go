package encryption

import "crypto/cipher"

// cfb8 implements CFB mode with 8-bit feedback, the variant the
// Minecraft protocol uses. Both directions run the block cipher
// forward; they differ only in which byte (plaintext or ciphertext)
// is shifted into the feedback register.
type cfb8 struct {
	block   cipher.Block
	iv      [16]byte
	encrypt bool
}

func newCFB8(block cipher.Block, iv []byte, mode Mode) *cfb8 {
	s := &cfb8{block: block, encrypt: mode == Encrypt}
	copy(s.iv[:], iv)
	return s
}

func (s *cfb8) XORKeyStream(dst, src []byte) {
	var ks [16]byte
	for i, b := range src {
		s.block.Encrypt(ks[:], s.iv[:])
		out := b ^ ks[0]

		if s.encrypt {
			dst[i] = out
			s.shiftIn(out)
		} else {
			// The feedback byte is always the ciphertext byte,
			// which on decrypt is the input.
			s.shiftIn(b)
			dst[i] = out
		}
	}
}

// shiftIn shifts the feedback register left by one byte and appends b.
func (s *cfb8) shiftIn(b byte) {
	copy(s.iv[:], s.iv[1:])
	s.iv[15] = b
}
