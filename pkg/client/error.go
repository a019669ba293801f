package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrAuthentication
	ErrNotFound
	ErrValidation
	ErrRequest
	ErrServer
	ErrConnectivity
	ErrUnexpectedResponse
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// StatusError is returned when the remote endpoint responds with a
// status code of 400 or above. It carries the status code, the message
// extracted from the response body, and any field-level validation
// failures. Use errors.Is to test against the error kinds: a
// StatusError unwraps to ErrAuthentication, ErrNotFound, ErrValidation,
// ErrServer or ErrRequest depending on the status code.
type StatusError struct {
	Code   int          // HTTP status code
	Detail string       // Message extracted from the response body, if any
	Fields []FieldError // Field-level validation failures, if any
	Body   []byte       // Raw response body
}

// FieldError is a single field-level validation failure, as reported
// by the remote endpoint for 422 responses.
type FieldError struct {
	Location []string // Path to the offending field, e.g. ["body", "email"]
	Message  string
	Type     string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrAuthentication:
		return "authentication failed"
	case ErrNotFound:
		return "not found"
	case ErrValidation:
		return "request validation failed"
	case ErrRequest:
		return "request rejected"
	case ErrServer:
		return "server error"
	case ErrConnectivity:
		return "connection failed"
	case ErrUnexpectedResponse:
		return "unexpected response"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

func (e *StatusError) Error() string {
	msg := e.Detail
	if msg == "" && len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, field := range e.Fields {
			if loc := strings.Join(field.Location, "."); loc != "" {
				parts = append(parts, loc+": "+field.Message)
			} else {
				parts = append(parts, field.Message)
			}
		}
		msg = strings.Join(parts, "; ")
	}
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	return fmt.Sprintf("%v (status %d): %s", e.Unwrap(), e.Code, msg)
}

// Unwrap maps the status code onto an error kind, so that a
// StatusError matches the taxonomy with errors.Is.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return ErrAuthentication
	case e.Code == http.StatusNotFound:
		return ErrNotFound
	case e.Code == http.StatusBadRequest || e.Code == http.StatusUnprocessableEntity:
		return ErrValidation
	case e.Code >= http.StatusInternalServerError:
		return ErrServer
	}
	return ErrRequest
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// newStatusError builds a StatusError from a response status code and body.
// The body is parsed permissively: the endpoint reports failures as
// {"detail": "..."}, {"detail": [...]}, {"error": "..."} or
// {"error": {"detail": "..."}}, and any body which matches none of these
// (or is not JSON at all) still yields a valid error.
func newStatusError(code int, body []byte) *StatusError {
	err := &StatusError{Code: code, Body: body}

	var fields struct {
		Detail json.RawMessage `json:"detail"`
		Error  json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &fields) != nil {
		return err
	}

	switch {
	case len(fields.Detail) > 0:
		err.Detail, err.Fields = parseDetail(fields.Detail)
	case len(fields.Error) > 0:
		if detail, _ := parseDetail(fields.Error); detail != "" {
			err.Detail = detail
		} else {
			// Nested form: {"error": {"detail": "..."}}
			var nested struct {
				Detail json.RawMessage `json:"detail"`
			}
			if json.Unmarshal(fields.Error, &nested) == nil && len(nested.Detail) > 0 {
				err.Detail, err.Fields = parseDetail(nested.Detail)
			} else {
				err.Detail = string(fields.Error)
			}
		}
	}

	return err
}

// parseDetail decodes a detail value which is either a plain string or a
// list of field-level validation failures.
func parseDetail(raw json.RawMessage) (string, []FieldError) {
	var detail string
	if json.Unmarshal(raw, &detail) == nil {
		return detail, nil
	}

	var items []struct {
		Loc  []any  `json:"loc"`
		Msg  string `json:"msg"`
		Type string `json:"type"`
	}
	if json.Unmarshal(raw, &items) != nil {
		return "", nil
	}
	fields := make([]FieldError, 0, len(items))
	for _, item := range items {
		field := FieldError{Message: item.Msg, Type: item.Type}
		for _, loc := range item.Loc {
			field.Location = append(field.Location, fmt.Sprint(loc))
		}
		fields = append(fields, field)
	}
	return "", fields
}
