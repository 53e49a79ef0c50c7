package book

import "errors"

// Error taxonomy for the whole core. Callers discriminate with errors.Is;
// every failure path wraps exactly one of these.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate")
	ErrFormat     = errors.New("bad format")
)
