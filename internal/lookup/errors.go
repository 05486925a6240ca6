package lookup

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrNotFound reports that the catalog answered but holds no entry for the name.
// It is an absence, not a failure.
var ErrNotFound = errors.New("no matching entry")

var ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

// TransportError means the request never reached the catalog or no response
// came back: refused connections, DNS failures, timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError means the catalog answered with something other than a usable
// entry: an unexpected status or a body that does not decode.
type ProtocolError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ProtocolError) Error() string {
	return e.Message
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func statusError(resp *http.Response) *ProtocolError {
	return &ProtocolError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Server returned %d: %s", resp.StatusCode, statusText(resp)),
	}
}

func bodyError(statusCode int, format string, err error) *ProtocolError {
	return &ProtocolError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, err),
		Err:        err,
	}
}

// statusText prefers the reason phrase the server sent over the canonical one.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
