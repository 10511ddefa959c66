package apperr

import (
	"errors"
	"fmt"
)

// Token verification failures. Malformed, tampered and wrong-secret tokens all
// collapse into ErrSignatureInvalid; ErrExpired means the signature checked out
// but the token is past its expiry.
var (
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// NotFoundError reports that an id did not resolve against a repository.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidArgumentError reports a domain invariant violation. Reason names the
// violated concept ("capacity", "latitude", "exceeds", "past").
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string { return e.Reason }

// Invalid builds an InvalidArgumentError with a formatted reason.
func Invalid(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalid reports whether err is an InvalidArgumentError.
func IsInvalid(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
