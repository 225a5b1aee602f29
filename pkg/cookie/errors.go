package cookie

import "errors"

var (
	ErrNotFound  = errors.New("cookie: not found")
	ErrNoSecret  = errors.New("cookie: secret required")
	ErrBadSig    = errors.New("cookie: invalid signature")
	ErrDecrypt   = errors.New("cookie: decryption failed")
	ErrEncode    = errors.New("cookie: failed to encode value")
	ErrMalformed = errors.New("cookie: malformed value")
)
