package encryption

import "errors"

// Failure conditions reported by the cipher engine. Construction and
// processing errors wrap these; callers discriminate with errors.Is.
var (
	// ErrInvalidKeyLength reports a shared secret that is not exactly
	// 16 bytes. This is a caller error; retry with a correct key.
	ErrInvalidKeyLength = errors.New("encryption: shared secret must be 16 bytes")

	// ErrResourceExhausted reports that the backend could not allocate
	// cipher state. The pure-Go backend never returns it (a failed
	// allocation panics instead), but the condition is part of the
	// contract for backends that can report it.
	ErrResourceExhausted = errors.New("encryption: cipher allocation failed")

	// ErrBackendInit reports that the cipher backend rejected otherwise
	// well-formed parameters during construction. Not recoverable by
	// retrying with the same inputs.
	ErrBackendInit = errors.New("encryption: cipher initialization failed")

	// ErrBackendProcessing reports a backend failure while transforming
	// data. Fatal to the context: the stream cannot continue and the
	// cipher must be closed.
	ErrBackendProcessing = errors.New("encryption: cipher processing failed")

	// ErrCipherClosed reports use of a Cipher after Close.
	ErrCipherClosed = errors.New("encryption: cipher is closed")
)
