package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedResponse marks a 2xx response whose body could not be used.
var ErrMalformedResponse = errors.New("malformed server response")

// RequestFailure is an ordinary request error (4xx outside 401/403): the
// server rejected the request and may have said why. ServerMessage is
// empty when the body carried no usable message.
type RequestFailure struct {
	StatusCode    int
	ServerMessage string
}

func (e *RequestFailure) Error() string {
	if e.ServerMessage != "" {
		return e.ServerMessage
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// FailureMessage translates a request error into user-facing text:
// the server-supplied message when one exists, the fallback otherwise.
func FailureMessage(err error, fallback string) string {
	var rf *RequestFailure
	if errors.As(err, &rf) && rf.ServerMessage != "" {
		return rf.ServerMessage
	}
	return fallback
}

// decodeMessage pulls {"message": ...} out of an error body.
func decodeMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}
