package variable

import "errors"

var (
	// ErrInvalidToken indicates a token that is not of the form "entity.property".
	ErrInvalidToken = errors.New("invalid variable token")

	// ErrDuplicateToken indicates a token registered more than once.
	ErrDuplicateToken = errors.New("duplicate variable token")

	// ErrInvalidContext indicates context data that does not fit its entity.
	ErrInvalidContext = errors.New("invalid variable context")
)
