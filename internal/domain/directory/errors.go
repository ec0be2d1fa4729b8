package directory

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrLocationNotFound  = errors.New("location not found")
	ErrSourceUnavailable = errors.New("employee source unavailable")
	ErrMalformedRecord   = errors.New("malformed employee record")
)
