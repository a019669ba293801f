package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	// Packages
	multipart "github.com/mutablelogic/go-openwebui/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Payload describes a single request: the HTTP method, the body, the
// body content type and the accepted response type. Payloads are
// single-use.
type Payload interface {
	io.Reader

	// Method returns the HTTP method for the request
	Method() string

	// Accept returns the accepted mimetype for the response, or empty
	// to accept anything
	Accept() string

	// Type returns the mimetype of the request body, or empty when the
	// request has no body
	Type() string
}

type request struct {
	method   string
	accept   string
	mimetype string
	buf      *bytes.Buffer
}

// Method constants which can be used directly as payloads for requests
// without a body, for example DoWithContext(ctx, MethodDelete, nil, ...)
type method string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeAny       = "*/*"
	ContentTypeJson      = "application/json"
	ContentTypeTextPlain = "text/plain"
	ContentTypeBinary    = "application/octet-stream"
)

const (
	MethodGet    = method(http.MethodGet)
	MethodDelete = method(http.MethodDelete)
)

var (
	_ Payload = (*request)(nil)
	_ Payload = method("")
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRequest returns a GET request payload with no body, accepting a
// JSON response.
func NewRequest() Payload {
	return &request{method: http.MethodGet, accept: ContentTypeJson}
}

// NewRequestEx returns a request payload with no body, with the given
// method and accepted response type.
func NewRequestEx(method, accept string) Payload {
	return &request{method: method, accept: accept}
}

// NewJSONRequest returns a POST request payload with the JSON encoding
// of v as the body.
func NewJSONRequest(v any) (Payload, error) {
	return NewJSONRequestEx(http.MethodPost, v, ContentTypeJson)
}

// NewJSONRequestEx returns a request payload with the JSON encoding of
// v as the body, with the given method and accepted response type.
func NewJSONRequestEx(method string, v any, accept string) (Payload, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return &request{method: method, accept: accept, mimetype: ContentTypeJson, buf: buf}, nil
}

// NewMultipartRequest returns a POST request payload with the fields of
// v encoded as multipart/form-data. Fields of type multipart.File are
// sent as file parts.
func NewMultipartRequest(v any, accept string) (Payload, error) {
	buf := new(bytes.Buffer)
	enc := multipart.NewEncoder(buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return &request{method: http.MethodPost, accept: accept, mimetype: enc.ContentType(), buf: buf}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (r *request) Method() string {
	return r.method
}

func (r *request) Accept() string {
	return r.accept
}

func (r *request) Type() string {
	return r.mimetype
}

func (r *request) Read(p []byte) (int, error) {
	if r.buf == nil {
		return 0, io.EOF
	}
	return r.buf.Read(p)
}

func (m method) Method() string {
	return string(m)
}

func (method) Accept() string {
	return ContentTypeJson
}

func (method) Type() string {
	return ""
}

func (method) Read(p []byte) (int, error) {
	return 0, io.EOF
}
