package library

import "errors"

var (
	ErrInvalidQuery    = errors.New("invalid query")
	ErrMissingField    = errors.New("missing field")
	ErrFieldNotAllowed = errors.New("field not allowed")
	ErrNotFound        = errors.New("book not found")
)
