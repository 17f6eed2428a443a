package codec

import "errors"

var (
	ErrOutOfRange       = errors.New("value does not fit in u32")
	ErrMalformedBuffer  = errors.New("malformed instruction buffer")
	ErrUnknownOperation = errors.New("unknown operation")
)
