package encryption

import "io"

// Reader decrypts everything read through it. Minecraft encrypts the
// two directions of a connection independently, so a Reader owns its
// own Cipher; pair it with a Writer built from the same secret.
type Reader struct {
	r io.Reader
	c *Cipher
}

// NewReader wraps r so that reads return decrypted bytes.
func NewReader(r io.Reader, secret []byte) (*Reader, error) {
	c, err := NewCipher(secret, Decrypt)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, c: c}, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if perr := r.c.Process(p[:n], p[:n]); perr != nil {
			return 0, perr
		}
	}
	return n, err
}

// Close releases the underlying cipher. It does not close the wrapped
// reader.
func (r *Reader) Close() error { return r.c.Close() }

// Writer encrypts everything written through it.
type Writer struct {
	w       io.Writer
	c       *Cipher
	scratch []byte
}

// NewWriter wraps w so that writes are encrypted before they reach it.
func NewWriter(w io.Writer, secret []byte) (*Writer, error) {
	c, err := NewCipher(secret, Encrypt)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, c: c}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	// io.Writer forbids modifying p, so encrypt into a scratch buffer.
	if cap(w.scratch) < len(p) {
		w.scratch = make([]byte, len(p))
	}
	buf := w.scratch[:len(p)]
	if err := w.c.Process(buf, p); err != nil {
		return 0, err
	}
	return w.w.Write(buf)
}

// Close releases the underlying cipher. It does not close the wrapped
// writer.
func (w *Writer) Close() error { return w.c.Close() }
