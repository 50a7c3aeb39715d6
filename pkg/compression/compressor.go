// Package compression provides reusable zlib contexts for the
// protocol's packet compression. The packet format declares the
// uncompressed size up front, so inflation targets a buffer of exactly
// that size and anything else is an error.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DefaultLevel matches zlib's default, which is what the vanilla server
// compresses with.
const DefaultLevel = zlib.DefaultCompression

var (
	// ErrCorruptData reports a zlib stream that cannot be decoded.
	ErrCorruptData = errors.New("compression: corrupt zlib data")

	// ErrSizeMismatch reports a stream whose actual uncompressed size
	// differs from the declared one.
	ErrSizeMismatch = errors.New("compression: uncompressed size is inaccurate")
)

// Inflater decompresses zlib streams whose uncompressed size is known
// in advance. The underlying context is reused across calls; an
// Inflater is not safe for concurrent use.
type Inflater struct {
	src *bytes.Reader
	zr  io.ReadCloser
}

func NewInflater() *Inflater {
	return &Inflater{src: bytes.NewReader(nil)}
}

// Inflate decompresses src into dst, whose length must be exactly the
// uncompressed size of the stream.
func (inf *Inflater) Inflate(dst, src []byte) error {
	inf.src.Reset(src)

	if inf.zr == nil {
		zr, err := zlib.NewReader(inf.src)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		inf.zr = zr
	} else if err := inf.zr.(zlib.Resetter).Reset(inf.src, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	if _, err := io.ReadFull(inf.zr, dst); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: stream shorter than declared", ErrSizeMismatch)
		}
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	// The stream must end exactly at len(dst). Reading past the end
	// also forces the checksum verification.
	var one [1]byte
	switch n, err := inf.zr.Read(one[:]); {
	case n != 0:
		return fmt.Errorf("%w: stream longer than declared", ErrSizeMismatch)
	case err != nil && err != io.EOF:
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return nil
}

// Deflater compresses payloads, reusing the deflate context across
// calls. Not safe for concurrent use.
type Deflater struct {
	buf bytes.Buffer
	zw  *zlib.Writer
}

// NewDeflater creates a deflate context at the given zlib level.
func NewDeflater(level int) (*Deflater, error) {
	d := &Deflater{}
	zw, err := zlib.NewWriterLevel(&d.buf, level)
	if err != nil {
		return nil, fmt.Errorf("create deflater: %w", err)
	}
	d.zw = zw
	return d, nil
}

// Deflate compresses src and returns the zlib stream. The returned
// slice is freshly allocated and stays valid across further calls.
func (d *Deflater) Deflate(src []byte) ([]byte, error) {
	d.buf.Reset()
	d.zw.Reset(&d.buf)

	if _, err := d.zw.Write(src); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if err := d.zw.Close(); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}

	out := make([]byte, d.buf.Len())
	copy(out, d.buf.Bytes())
	return out, nil
}
