package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error is a normalized backend failure. Detail is the human-readable
// message pulled from the backend's error envelope, surfaced to the user
// verbatim; Status keeps the HTTP status code for callers that care.
type Error struct {
	Status int
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Detail
}

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4096

// newStatusError normalizes a non-2xx response into an Error.
//
// The backend's convention is a JSON body with a "detail" field, either a
// string or a nested structure. A string detail is used as-is; anything
// else is stringified wholesale. An unparseable body falls back to a
// generic status message.
func newStatusError(resp *http.Response) *Error {
	detail := fmt.Sprintf("HTTP %d", resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(body) > 0 {
		var envelope struct {
			Detail json.RawMessage `json:"detail"`
		}
		if json.Unmarshal(body, &envelope) == nil {
			var s string
			switch {
			case len(envelope.Detail) > 0 && json.Unmarshal(envelope.Detail, &s) == nil:
				detail = s
			default:
				detail = compactJSON(body)
			}
		}
	}

	return &Error{Status: resp.StatusCode, Detail: detail}
}

func compactJSON(body []byte) string {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return string(body)
	}
	return string(out)
}
