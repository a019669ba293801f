package openwebui

import (
	"context"
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CODE AND MARKDOWN

// FormatCode formats python code and returns the formatted source.
func (c *Client) FormatCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", ErrBadParameter.With("code")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Code string `json:"code"`
	}{code})
	if err != nil {
		return "", err
	}

	// Perform request
	var response struct {
		Code string `json:"code"`
	}
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/utils/code/format")); err != nil {
		return "", err
	}

	// Return the response
	return response.Code, nil
}

// ExecuteCode runs python code through the code execution engine
// configured on the server and returns its output.
func (c *Client) ExecuteCode(ctx context.Context, code string) (map[string]any, error) {
	if code == "" {
		return nil, ErrBadParameter.With("code")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Code string `json:"code"`
	}{code})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/utils/code/execute")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// MarkdownToHTML converts markdown to HTML.
func (c *Client) MarkdownToHTML(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", ErrBadParameter.With("markdown")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Markdown string `json:"md"`
	}{markdown})
	if err != nil {
		return "", err
	}

	// Perform request
	var response struct {
		HTML string `json:"html"`
	}
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/utils/markdown")); err != nil {
		return "", err
	}

	// Return the response
	return response.HTML, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - DOWNLOADS

// GetGravatar returns the gravatar image URL for an email address.
func (c *Client) GetGravatar(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrBadParameter.With("email")
	}

	// Create request
	query := url.Values{opt.EmailKey: []string{email}}

	// Perform request
	var response any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/utils/gravatar"), client.OptQuery(query)); err != nil {
		return "", err
	}

	// Return the response
	gravatar, ok := response.(string)
	if !ok {
		return "", ErrUnexpectedResponse.With("gravatar url")
	}
	return gravatar, nil
}

// ExportChatPDF renders a chat title and its messages as a PDF
// document.
func (c *Client) ExportChatPDF(ctx context.Context, title string, messages []schema.CompletionMessage) ([]byte, error) {
	if title == "" {
		return nil, ErrBadParameter.With("title")
	}
	if len(messages) == 0 {
		return nil, ErrBadParameter.With("messages")
	}

	// Create request
	req, err := client.NewJSONRequestEx(http.MethodPost, struct {
		Title    string                     `json:"title"`
		Messages []schema.CompletionMessage `json:"messages"`
	}{title, messages}, client.ContentTypeAny)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/utils/pdf")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// DownloadDatabase downloads the server database file. Admin only,
// and only supported when the server uses SQLite.
func (c *Client) DownloadDatabase(ctx context.Context) ([]byte, error) {
	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodGet, client.ContentTypeAny), &response, client.OptPath("v1/utils/db/download")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
