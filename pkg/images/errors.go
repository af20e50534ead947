package images

import "fmt"

// ErrorKind classifies failures for the transport layer.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota
	KindNotFound
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	default:
		return "internal failure"
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func badRequest(message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Err: err}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// ImageNotFound is returned for hashes that have no stored source.
func ImageNotFound(hash string) *Error {
	return notFound(fmt.Sprintf("Image %s was not found", hash))
}

// BadRequest is used by transports for malformed requests that never reach
// the service.
func BadRequest(message string, err error) *Error {
	return badRequest(message, err)
}
