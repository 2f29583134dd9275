package api

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is matched by every *RequestError.
var ErrRequestFailed = errors.New("request failed")

// RequestError is a backend rejection: any response with a non-2xx status.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

func newRequestError(status int, serverMessage string) *RequestError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &RequestError{Status: status, Message: msg}
}
