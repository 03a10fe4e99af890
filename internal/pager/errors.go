package pager

import (
	"errors"

	"pagerd/internal/paging"
)

// badRequestError marks caller input the pager cannot act on, such as an
// expression without the itemsPerPage filter or a malformed collection.
type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }

func (e badRequestError) Unwrap() error { return e.err }

// ErrBadRequest wraps err as a bad request.
func ErrBadRequest(err error) error { return badRequestError{err: err} }

// IsBadRequest reports whether err was caused by invalid caller input (400).
func IsBadRequest(err error) bool {
	var e badRequestError
	return errors.As(err, &e)
}

// IsNotRegistered reports whether err names an unknown instance (404).
func IsNotRegistered(err error) bool { return paging.IsNotRegistered(err) }
