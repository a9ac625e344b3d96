package domain

import (
	"errors"
	"fmt"
)

var ErrAuthFailed = errors.New("authentication failed")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrAlertNotFound = errors.New("alert not found")
var ErrRefreshInFlight = errors.New("refresh already in progress")
var ErrViewSuperseded = errors.New("view superseded by a newer activation")

// RequestError is a non-auth failure of a single remote call. Inside
// aggregation it is absorbed into a domain default; for user-initiated
// actions it is surfaced with the server-supplied message.
type RequestError struct {
	Endpoint string
	Message  string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s failed: %s", e.Endpoint, e.Message)
}

// ValidationError rejects malformed input before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsRequestError reports whether err is a per-call transport failure.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}
