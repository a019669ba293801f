package openwebui

import (
	"context"
	"io"
	"net/http"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	multipart "github.com/mutablelogic/go-openwebui/pkg/multipart"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - UPLOAD AND LISTING

// UploadFile uploads a file, reading the content from body. The
// filename is reported to the server and determines the content type.
// Use WithMetadata to attach metadata, and WithProcess and
// WithProcessInBackground to control content extraction.
func (c *Client) UploadFile(ctx context.Context, filename string, body io.Reader, opts ...opt.Opt) (*schema.File, error) {
	if filename == "" {
		return nil, ErrBadParameter.With("filename")
	} else if body == nil {
		return nil, ErrBadParameter.With("body")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Content is extracted in the background unless requested otherwise
	query := url.Values{
		opt.ProcessKey:    []string{"true"},
		opt.BackgroundKey: []string{"true"},
	}
	for key, values := range o.Query(opt.ProcessKey, opt.BackgroundKey) {
		query[key] = values
	}

	// Create request
	req, err := client.NewMultipartRequest(struct {
		File     multipart.File `json:"file"`
		Metadata string         `json:"metadata,omitempty"`
	}{
		File:     multipart.File{Path: filename, Body: body},
		Metadata: o.GetString(opt.MetadataKey),
	}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.File
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/files/"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ListFiles returns the files accessible to the current user. Use
// WithContent(false) to strip extracted content from the response.
func (c *Client) ListFiles(ctx context.Context, opts ...opt.Opt) ([]schema.File, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/files/")}
	if q := o.Query(opt.ContentKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []schema.File
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// SearchFiles returns files whose name matches the pattern, which may
// contain wildcards such as "*.txt".
func (c *Client) SearchFiles(ctx context.Context, pattern string, opts ...opt.Opt) ([]schema.File, error) {
	if pattern == "" {
		return nil, ErrBadParameter.With("pattern")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	query := o.Query(opt.ContentKey)
	query.Set(opt.FilenameKey, pattern)
	reqOpts := []client.RequestOpt{client.OptPath("v1/files/search"), client.OptQuery(query)}

	// Perform request
	var response []schema.File
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// DeleteAllFiles removes every file on the server. Admin only.
func (c *Client) DeleteAllFiles(ctx context.Context) error {
	// Perform request
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1/files/all")); err != nil {
		return err
	}

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - FILE BY ID

// GetFile returns a file by its identifier.
func (c *Client) GetFile(ctx context.Context, id string) (*schema.File, error) {
	if id == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Perform request
	var response schema.File
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/files", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteFile removes a file by its identifier.
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	if id == "" {
		return ErrBadParameter.With("file id")
	}

	// Perform request
	if err := c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("v1/files", id)); err != nil {
		return err
	}

	// Return success
	return nil
}

// GetFileProcessStatus returns the content extraction status of a
// file, for example "pending", "completed" or "failed".
func (c *Client) GetFileProcessStatus(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrBadParameter.With("file id")
	}

	// Create request
	reqOpts := []client.RequestOpt{
		client.OptPath("v1/files", id, "process/status"),
		client.OptQuery(url.Values{"stream": []string{"false"}}),
	}

	// Perform request
	var response struct {
		Status string `json:"status"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return "", err
	}

	// Return the status
	return response.Status, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONTENT

// GetFileContent downloads the raw content of a file. Use
// WithAttachment to request a Content-Disposition of attachment.
func (c *Client) GetFileContent(ctx context.Context, id string, opts ...opt.Opt) ([]byte, error) {
	if id == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/files", id, "content")}
	if q := o.Query(opt.AttachmentKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodGet, client.ContentTypeAny), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetFileHTMLContent downloads the content of a file for serving as
// HTML. Restricted to files owned by an admin user.
func (c *Client) GetFileHTMLContent(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Perform request
	var response []byte
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodGet, client.ContentTypeAny), &response, client.OptPath("v1/files", id, "content/html")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetFileDataContent returns the text content extracted from a file.
func (c *Client) GetFileDataContent(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrBadParameter.With("file id")
	}

	// Perform request
	var response struct {
		Content string `json:"content"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/files", id, "data/content")); err != nil {
		return "", err
	}

	// Return the content
	return response.Content, nil
}

// UpdateFileDataContent replaces the extracted text content of a file
// and returns the stored content.
func (c *Client) UpdateFileDataContent(ctx context.Context, id, content string) (string, error) {
	if id == "" {
		return "", ErrBadParameter.With("file id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Content string `json:"content"`
	}{Content: content})
	if err != nil {
		return "", err
	}

	// Perform request
	var response struct {
		Content string `json:"content"`
	}
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/files", id, "data/content/update")); err != nil {
		return "", err
	}

	// Return the content
	return response.Content, nil
}
