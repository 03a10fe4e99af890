package paging

import "errors"

// notRegisteredError is returned by registry accessors for an unknown instance id.
type notRegisteredError struct{ id string }

func (e notRegisteredError) Error() string { return "pagination instance not registered: " + e.id }

// ErrNotRegistered returns the error reported for an unknown instance id.
func ErrNotRegistered(id string) error { return notRegisteredError{id: id} }

// unknownInstanceError signals a slice request against an undeclared instance.
type unknownInstanceError struct{ id string }

func (e unknownInstanceError) Error() string {
	return "itemsPerPage id argument (id: " + e.id + ") does not match a registered pagination id"
}

// ErrUnknownInstance returns the error reported by the slicer for an unknown id.
func ErrUnknownInstance(id string) error { return unknownInstanceError{id: id} }

// IsNotRegistered reports whether err indicates an unknown instance id.
// Slicer errors for unknown ids match as well.
func IsNotRegistered(err error) bool {
	var nr notRegisteredError
	if errors.As(err, &nr) {
		return true
	}
	return IsUnknownInstance(err)
}

// IsUnknownInstance reports whether err came from slicing against an unknown id.
func IsUnknownInstance(err error) bool {
	var ui unknownInstanceError
	return errors.As(err, &ui)
}
