package storefront

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotLoggedIn is returned by admin operations without a session
var ErrNotLoggedIn = errors.New("admin login required")

// ValidationError reports input rejected before any request is made
type ValidationError struct {
	Fields  []string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newMissingFieldsError lists blank required fields in form order
func newMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: "Please fill in all required fields: " + strings.Join(fields, ", "),
	}
}

// TransportError reports a request that produced no usable response:
// connection failures, timeouts, non-JSON bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApplicationError is a response the backend rejected with success=false.
// Message is shown to the user verbatim.
type ApplicationError struct {
	Status  int
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown product or order
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}
