package openwebui

import (
	"context"
	"io"
	"net/http"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	multipart "github.com/mutablelogic/go-openwebui/pkg/multipart"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SERVERS

// ListPipelineServers returns the connections which are capable of
// hosting pipelines.
func (c *Client) ListPipelineServers(ctx context.Context) ([]schema.PipelineServer, error) {
	// Perform request
	var response struct {
		Data []schema.PipelineServer `json:"data"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/pipelines/list")); err != nil {
		return nil, err
	}

	// Return the response
	return response.Data, nil
}

// ListPipelines returns the pipelines installed on a pipeline
// server. Use WithServerIndex to select a server other than the
// first.
func (c *Client) ListPipelines(ctx context.Context, opts ...opt.Opt) ([]schema.Pipeline, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/pipelines/")}
	if q := o.Query(opt.ServerKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response struct {
		Data []schema.Pipeline `json:"data"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response.Data, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// UploadPipeline uploads a pipeline file to the pipeline server with
// the given index, reading the python source from body.
func (c *Client) UploadPipeline(ctx context.Context, index uint, filename string, body io.Reader) (map[string]any, error) {
	if filename == "" {
		return nil, ErrBadParameter.With("filename")
	} else if body == nil {
		return nil, ErrBadParameter.With("body")
	}

	// Create request
	req, err := client.NewMultipartRequest(struct {
		File   multipart.File `json:"file"`
		URLIdx string         `json:"urlIdx"`
	}{
		File:   multipart.File{Path: filename, Body: body},
		URLIdx: strconv.FormatUint(uint64(index), 10),
	}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/pipelines/upload")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// AddPipeline installs a pipeline on the pipeline server with the
// given index, downloading it from a URL.
func (c *Client) AddPipeline(ctx context.Context, index uint, url string) (map[string]any, error) {
	if url == "" {
		return nil, ErrBadParameter.With("url")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		URL    string `json:"url"`
		URLIdx uint   `json:"urlIdx"`
	}{url, index})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/pipelines/add")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// DeletePipeline removes a pipeline from the pipeline server with
// the given index.
func (c *Client) DeletePipeline(ctx context.Context, index uint, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("pipeline id")
	}

	// Create request
	req, err := client.NewJSONRequestEx(http.MethodDelete, struct {
		ID     string `json:"id"`
		URLIdx uint   `json:"urlIdx"`
	}{id, index}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/pipelines/delete")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - VALVES

// GetPipelineValves returns the valve settings for a pipeline. Use
// WithServerIndex to select a server other than the first.
func (c *Client) GetPipelineValves(ctx context.Context, id string, opts ...opt.Opt) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("pipeline id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/pipelines", id, "valves")}
	if q := o.Query(opt.ServerKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetPipelineValvesSpec returns the valve specification for a
// pipeline, which describes the valve names and types.
func (c *Client) GetPipelineValvesSpec(ctx context.Context, id string, opts ...opt.Opt) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("pipeline id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/pipelines", id, "valves/spec")}
	if q := o.Query(opt.ServerKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdatePipelineValves replaces the valve settings for a pipeline.
func (c *Client) UpdatePipelineValves(ctx context.Context, id string, valves map[string]any, opts ...opt.Opt) (map[string]any, error) {
	if id == "" {
		return nil, ErrBadParameter.With("pipeline id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	req, err := client.NewJSONRequest(valves)
	if err != nil {
		return nil, err
	}
	reqOpts := []client.RequestOpt{client.OptPath("v1/pipelines", id, "valves/update")}
	if q := o.Query(opt.ServerKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
