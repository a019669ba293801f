package openwebui

import (
	"context"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONFIG

// GetEvaluationConfig returns the arena model configuration. Admin
// only.
func (c *Client) GetEvaluationConfig(ctx context.Context) (*schema.EvaluationConfig, error) {
	// Perform request
	var response schema.EvaluationConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/evaluations/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateEvaluationConfig updates the arena model configuration. Admin
// only.
func (c *Client) UpdateEvaluationConfig(ctx context.Context, form schema.EvaluationConfig) (*schema.EvaluationConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.EvaluationConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/evaluations/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LISTING

// ListFeedbacks returns a page of feedbacks with submitter details.
// Use WithOrderBy and WithDirection to sort and WithPage to paginate.
// Admin only.
func (c *Client) ListFeedbacks(ctx context.Context, opts ...opt.Opt) (*schema.FeedbackList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request, where the first page is returned unless requested
	// otherwise
	query := url.Values{opt.PageKey: []string{"1"}}
	for key, values := range o.Query(opt.OrderByKey, opt.DirectionKey, opt.PageKey) {
		query[key] = values
	}

	// Perform request
	var response schema.FeedbackList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/evaluations/feedbacks/list"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ListAllFeedbacks returns every feedback in the system. Admin only.
func (c *Client) ListAllFeedbacks(ctx context.Context) ([]schema.Feedback, error) {
	// Perform request
	var response []schema.Feedback
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/evaluations/feedbacks/all")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ExportAllFeedbacks returns every feedback with its chat snapshot.
// Admin only.
func (c *Client) ExportAllFeedbacks(ctx context.Context) ([]schema.Feedback, error) {
	// Perform request
	var response []schema.Feedback
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/evaluations/feedbacks/all/export")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListUserFeedbacks returns the feedbacks submitted by the current
// user.
func (c *Client) ListUserFeedbacks(ctx context.Context) ([]schema.Feedback, error) {
	// Perform request
	var response []schema.Feedback
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/evaluations/feedbacks/user")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// DeleteAllFeedbacks removes every feedback in the system. Admin
// only.
func (c *Client) DeleteAllFeedbacks(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/evaluations/feedbacks/all")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// DeleteUserFeedbacks removes the feedbacks submitted by the current
// user.
func (c *Client) DeleteUserFeedbacks(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/evaluations/feedbacks")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// CreateFeedback submits a new feedback entry.
func (c *Client) CreateFeedback(ctx context.Context, form schema.FeedbackForm) (*schema.Feedback, error) {
	if form.Type == "" {
		return nil, ErrBadParameter.With("type")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Feedback
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/evaluations/feedback")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetFeedback returns a feedback entry.
func (c *Client) GetFeedback(ctx context.Context, id string) (*schema.Feedback, error) {
	if id == "" {
		return nil, ErrBadParameter.With("feedback id")
	}

	// Perform request
	var response schema.Feedback
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/evaluations/feedback", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateFeedback updates a feedback entry.
func (c *Client) UpdateFeedback(ctx context.Context, id string, form schema.FeedbackForm) (*schema.Feedback, error) {
	if id == "" {
		return nil, ErrBadParameter.With("feedback id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Feedback
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/evaluations/feedback", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteFeedback removes a feedback entry.
func (c *Client) DeleteFeedback(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("feedback id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/evaluations/feedback", id)); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
