package openwebui

import (
	"context"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LISTING

// ListKnowledge returns a page of the knowledge bases the current
// user has read access to. Use WithPage to paginate.
func (c *Client) ListKnowledge(ctx context.Context, opts ...opt.Opt) (*schema.KnowledgeList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/knowledge/")}
	if q := o.Query(opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.KnowledgeList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ListAllKnowledge returns every knowledge base the current user has
// write access to, with owner information.
func (c *Client) ListAllKnowledge(ctx context.Context) ([]schema.Knowledge, error) {
	// Perform request
	var response []schema.Knowledge
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/knowledge/list")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// SearchKnowledge returns a page of knowledge bases matching the
// criteria. Use WithQuery to filter by name, WithView to restrict to
// created or shared bases, and WithPage to paginate.
func (c *Client) SearchKnowledge(ctx context.Context, opts ...opt.Opt) (*schema.KnowledgeList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/knowledge/search")}
	if q := o.Query(opt.QueryKey, opt.ViewKey, opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.KnowledgeList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SearchKnowledgeFiles returns a page of files matched across all
// knowledge bases. Use WithQuery to filter by filename and WithPage
// to paginate.
func (c *Client) SearchKnowledgeFiles(ctx context.Context, opts ...opt.Opt) (*schema.KnowledgeFileList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/knowledge/search/files")}
	if q := o.Query(opt.QueryKey, opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.KnowledgeFileList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// CreateKnowledge creates a new knowledge base.
func (c *Client) CreateKnowledge(ctx context.Context, form schema.KnowledgeForm) (*schema.Knowledge, error) {
	if form.Name == "" {
		return nil, ErrBadParameter.With("name")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/knowledge/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetKnowledge returns a knowledge base with its files.
func (c *Client) GetKnowledge(ctx context.Context, id string) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/knowledge", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateKnowledge updates the name, description or access control of
// a knowledge base.
func (c *Client) UpdateKnowledge(ctx context.Context, id string, form schema.KnowledgeForm) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/knowledge", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteKnowledge removes a knowledge base and its vector collection.
func (c *Client) DeleteKnowledge(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("knowledge id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/knowledge", id, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// ResetKnowledge removes all files from a knowledge base, leaving the
// base itself in place.
func (c *Client) ResetKnowledge(ctx context.Context, id string) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/knowledge", id, "reset")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ReindexKnowledge rebuilds the vector index for every knowledge
// base. Admin only.
func (c *Client) ReindexKnowledge(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/knowledge/reindex")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - FILES

// AddKnowledgeFile adds an uploaded file to a knowledge base and
// indexes its content.
func (c *Client) AddKnowledgeFile(ctx context.Context, id, fileID string) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	} else if fileID == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		FileID string `json:"file_id"`
	}{FileID: fileID})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/knowledge", id, "file/add")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// AddKnowledgeFiles adds several uploaded files to a knowledge base
// in one batch. Files which fail to index are reported in the
// Warnings field of the response.
func (c *Client) AddKnowledgeFiles(ctx context.Context, id string, fileIDs ...string) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	} else if len(fileIDs) == 0 {
		return nil, ErrBadParameter.With("file ids")
	}

	// Create request
	forms := make([]struct {
		FileID string `json:"file_id"`
	}, 0, len(fileIDs))
	for _, fileID := range fileIDs {
		forms = append(forms, struct {
			FileID string `json:"file_id"`
		}{FileID: fileID})
	}
	req, err := client.NewJSONRequest(forms)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/knowledge", id, "files/batch/add")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateKnowledgeFile re-indexes a file in a knowledge base after its
// content has changed.
func (c *Client) UpdateKnowledgeFile(ctx context.Context, id, fileID string) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	} else if fileID == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		FileID string `json:"file_id"`
	}{FileID: fileID})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/knowledge", id, "file/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// RemoveKnowledgeFile removes a file from a knowledge base. Use
// WithDeleteFile to also remove the underlying file.
func (c *Client) RemoveKnowledgeFile(ctx context.Context, id, fileID string, opts ...opt.Opt) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	} else if fileID == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		FileID string `json:"file_id"`
	}{FileID: fileID})
	if err != nil {
		return nil, err
	}
	reqOpts := []client.RequestOpt{client.OptPath("v1/knowledge", id, "file/remove")}
	if q := o.Query(opt.DeleteFileKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.Knowledge
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
