package openwebui

import (
	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is the kind of an error returned by the client. Every error
// returned by a client method matches exactly one kind with errors.Is.
type Err = client.Err

// StatusError carries the status code, message and field-level detail
// of a failure reported by the endpoint.
type StatusError = client.StatusError

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess            = client.ErrSuccess
	ErrBadParameter       = client.ErrBadParameter
	ErrAuthentication     = client.ErrAuthentication
	ErrNotFound           = client.ErrNotFound
	ErrValidation         = client.ErrValidation
	ErrRequest            = client.ErrRequest
	ErrServer             = client.ErrServer
	ErrConnectivity       = client.ErrConnectivity
	ErrUnexpectedResponse = client.ErrUnexpectedResponse
)
