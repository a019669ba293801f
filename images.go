package openwebui

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONFIG

// GetImagesConfig returns the image generation and editing
// configuration.
func (c *Client) GetImagesConfig(ctx context.Context) (*schema.ImagesConfig, error) {
	// Perform request
	var response schema.ImagesConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/images/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateImagesConfig replaces the image generation and editing
// configuration and returns the stored settings.
func (c *Client) UpdateImagesConfig(ctx context.Context, config schema.ImagesConfig) (*schema.ImagesConfig, error) {
	// Normalize the workflow node lists, where a nil list is sent as
	// an empty array rather than null
	if config.ComfyUIWorkflowNodes == nil {
		config.ComfyUIWorkflowNodes = []map[string]any{}
	}
	if config.EditComfyUIWorkflowNodes == nil {
		config.EditComfyUIWorkflowNodes = []map[string]any{}
	}

	// Create request
	req, err := client.NewJSONRequest(config)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ImagesConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/images/config/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// VerifyImagesURL checks that the configured Automatic1111 or
// ComfyUI endpoint is reachable.
func (c *Client) VerifyImagesURL(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/images/config/url/verify")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - GENERATION

// ListImageModels returns the image models offered by the configured
// engine.
func (c *Client) ListImageModels(ctx context.Context) ([]schema.ImageModel, error) {
	// Perform request
	var response []schema.ImageModel
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/images/models")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GenerateImages generates images from the form prompt and returns
// references to the stored images.
func (c *Client) GenerateImages(ctx context.Context, form schema.CreateImageForm) ([]schema.Image, error) {
	if form.Prompt == "" {
		return nil, ErrBadParameter.With("prompt")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Image
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/images/generations")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// EditImage edits the form images following the form prompt and
// returns references to the stored images.
func (c *Client) EditImage(ctx context.Context, form schema.EditImageForm) ([]schema.Image, error) {
	if form.Image == nil {
		return nil, ErrBadParameter.With("image")
	}
	if form.Prompt == "" {
		return nil, ErrBadParameter.With("prompt")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Image
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/images/edit")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}
