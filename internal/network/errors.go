package network

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies why a node call failed.
type ErrorKind string

const (
	KindTimeout    ErrorKind = "timeout"
	KindConnection ErrorKind = "connection_error"
	KindHTTP       ErrorKind = "http_error"
	KindUnknown    ErrorKind = "unknown"
)

// Error is returned once a call has failed for good.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a network Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var nerr *Error
	return errors.As(err, &nerr) && nerr.Kind == kind
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var nerr *Error
	if errors.As(err, &nerr) {
		return nerr.StatusCode
	}
	return 0
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func classify(err error) ErrorKind {
	var se *statusError
	if errors.As(err, &se) {
		return KindHTTP
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	var te *transportError
	if errors.As(err, &te) && !errors.Is(err, context.Canceled) {
		return KindConnection
	}
	return KindUnknown
}

func newError(err error, nodeURL, label string) *Error {
	prefix := ""
	if label != "" {
		prefix = label + ": "
	}
	kind := classify(err)
	out := &Error{Kind: kind, Err: err}

	switch kind {
	case KindTimeout:
		out.Message = fmt.Sprintf("%sConnection timeout. Node may be unavailable: %s", prefix, nodeURL)
	case KindConnection:
		out.Message = fmt.Sprintf("%sCannot connect to node: %s. Check your network connection.", prefix, nodeURL)
	case KindHTTP:
		var se *statusError
		errors.As(err, &se)
		out.StatusCode = se.code
		out.Body = se.body
		body := se.body
		if body == "" {
			body = "Unknown error"
		}
		out.Message = fmt.Sprintf("%sHTTP error %d: %s", prefix, se.code, body)
	default:
		out.Message = fmt.Sprintf("%sNetwork error: %v", prefix, err)
	}
	return out
}
