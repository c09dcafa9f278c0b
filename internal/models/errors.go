package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrUsernameNotUnique = errors.New("the username is already taken")
)

// NotFound returns an error for a missing resource of the given kind.
//
// The error wraps ErrResourceNotFound.
func NotFound(kind string) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, kind)
}
