package api

import "fmt"

// RequestError is a non-2xx response from the server. Message carries the
// server's "error" field when one was present.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether the server rejected the request with 401.
func (e *RequestError) IsUnauthorized() bool {
	return e.Status == 401
}

// TransportError is a failure before a response could be interpreted: the
// request never reached the server, or the response body could not be decoded.
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
