package client_test

import (
	"errors"
	"net/http"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_error_001(t *testing.T) {
	// Each kind has a distinct message
	assert := assert.New(t)
	assert.Equal("success", client.ErrSuccess.Error())
	assert.Equal("bad parameter", client.ErrBadParameter.Error())
	assert.Equal("authentication failed", client.ErrAuthentication.Error())
	assert.Equal("not found", client.ErrNotFound.Error())
	assert.Equal("request validation failed", client.ErrValidation.Error())
	assert.Equal("request rejected", client.ErrRequest.Error())
	assert.Equal("server error", client.ErrServer.Error())
	assert.Equal("connection failed", client.ErrConnectivity.Error())
	assert.Equal("unexpected response", client.ErrUnexpectedResponse.Error())
}

func Test_error_002(t *testing.T) {
	// With and Withf wrap the kind so errors.Is matches
	assert := assert.New(t)

	err := client.ErrBadParameter.With("missing id")
	assert.ErrorIs(err, client.ErrBadParameter)
	assert.Equal("bad parameter: missing id", err.Error())

	err = client.ErrNotFound.Withf("chat %q", "abc")
	assert.ErrorIs(err, client.ErrNotFound)
	assert.Equal(`not found: chat "abc"`, err.Error())
}

func Test_error_003(t *testing.T) {
	// Status codes unwrap onto error kinds
	assert := assert.New(t)
	for _, tc := range []struct {
		code int
		kind client.Err
	}{
		{http.StatusBadRequest, client.ErrValidation},
		{http.StatusUnauthorized, client.ErrAuthentication},
		{http.StatusForbidden, client.ErrAuthentication},
		{http.StatusNotFound, client.ErrNotFound},
		{http.StatusConflict, client.ErrRequest},
		{http.StatusUnprocessableEntity, client.ErrValidation},
		{http.StatusTooManyRequests, client.ErrRequest},
		{http.StatusInternalServerError, client.ErrServer},
		{http.StatusBadGateway, client.ErrServer},
	} {
		err := &client.StatusError{Code: tc.code}
		assert.True(errors.Is(err, tc.kind), "status %d", tc.code)
	}
}

func Test_error_004(t *testing.T) {
	// The message includes the kind, the status code and the detail
	assert := assert.New(t)

	err := &client.StatusError{Code: http.StatusNotFound, Detail: "Chat not found"}
	assert.Equal("not found (status 404): Chat not found", err.Error())

	// Without a detail, the status text is used
	err = &client.StatusError{Code: http.StatusBadGateway}
	assert.Equal("server error (status 502): Bad Gateway", err.Error())
}

func Test_error_005(t *testing.T) {
	// Field errors are folded into the message when there is no detail
	assert := assert.New(t)
	err := &client.StatusError{
		Code: http.StatusUnprocessableEntity,
		Fields: []client.FieldError{
			{Location: []string{"body", "email"}, Message: "field required"},
			{Location: []string{"body", "password"}, Message: "too short"},
		},
	}
	assert.Equal("request validation failed (status 422): body.email: field required; body.password: too short", err.Error())
}
