package newsdesk

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNSUPPORTED = "unsupported"
	EUPSTREAM    = "upstream"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// Upstream describes the failed remote call, when one was involved.
	Upstream *Upstream
}

// Upstream carries what a remote service answered when a call failed.
type Upstream struct {
	Service string `json:"service"`
	Status  int    `json:"status,omitempty"`
	Body    string `json:"body,omitempty"`
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("newsdesk error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// UpstreamOf returns the remote call details attached to err, if any.
func UpstreamOf(err error) *Upstream {
	var e *Error
	if errors.As(err, &e) {
		return e.Upstream
	}
	return nil
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// UpstreamErrorf returns an EUPSTREAM error describing a failed remote call.
func UpstreamErrorf(up Upstream, format string, args ...any) *Error {
	return &Error{
		Code:     EUPSTREAM,
		Message:  fmt.Sprintf(format, args...),
		Upstream: &up,
	}
}
