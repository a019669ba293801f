package openwebui

import (
	"context"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONFIG

// GetTaskConfig returns the background task configuration.
func (c *Client) GetTaskConfig(ctx context.Context) (*schema.TaskConfig, error) {
	// Perform request
	var response schema.TaskConfig
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/tasks/config")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateTaskConfig replaces the background task configuration and
// returns the stored settings.
func (c *Client) UpdateTaskConfig(ctx context.Context, config schema.TaskConfig) (*schema.TaskConfig, error) {
	// Create request
	req, err := client.NewJSONRequest(config)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.TaskConfig
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tasks/config/update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - TASK COMPLETIONS

// GenerateTitle generates a title for a chat from its messages using
// the task model.
func (c *Client) GenerateTitle(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "title", form)
}

// GenerateFollowUps generates follow-up prompts for a chat from its
// messages.
func (c *Client) GenerateFollowUps(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "follow_up", form)
}

// GenerateTags generates categorisation tags for a chat from its
// messages.
func (c *Client) GenerateTags(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "tags", form)
}

// GenerateImagePrompt generates an image generation prompt from the
// chat messages.
func (c *Client) GenerateImagePrompt(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "image_prompt", form)
}

// GenerateQueries generates search queries from the chat messages.
// Set the form type to "web_search" or "retrieval" to match the
// query generation setting which has to be enabled on the server.
func (c *Client) GenerateQueries(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "queries", form)
}

// GenerateAutocompletion completes a partially typed prompt. The
// form type selects the completion style and the prompt carries the
// text typed so far.
func (c *Client) GenerateAutocompletion(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "auto", form)
}

// GenerateEmoji generates an emoji representing the form prompt.
func (c *Client) GenerateEmoji(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "emoji", form)
}

// GenerateMoaResponse merges the form responses into a single
// mixture of agents response to the form prompt.
func (c *Client) GenerateMoaResponse(ctx context.Context, form schema.TaskForm) (*schema.Completion, error) {
	return c.taskCompletion(ctx, "moa", form)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MANAGEMENT

// ListTasks returns the identifiers of the tasks currently running
// on the server.
func (c *Client) ListTasks(ctx context.Context) ([]string, error) {
	// Perform request
	var response struct {
		Tasks []string `json:"tasks"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("tasks")); err != nil {
		return nil, err
	}

	// Return the response
	return response.Tasks, nil
}

// ListChatTasks returns the identifiers of the tasks running for a
// chat.
func (c *Client) ListChatTasks(ctx context.Context, chat string) ([]string, error) {
	if chat == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response struct {
		TaskIDs []string `json:"task_ids"`
	}
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("tasks/chat", chat)); err != nil {
		return nil, err
	}

	// Return the response
	return response.TaskIDs, nil
}

// StopTask stops a running task. It returns true when the task was
// found and cancelled.
func (c *Client) StopTask(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("task id")
	}

	// Perform request
	var response struct {
		Status bool `json:"status"`
	}
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("tasks/stop", id)); err != nil {
		return false, err
	}

	// Return the response
	return response.Status, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// taskCompletion requests a task model completion of the named kind.
func (c *Client) taskCompletion(ctx context.Context, kind string, form schema.TaskForm) (*schema.Completion, error) {
	if form.Model == "" {
		return nil, ErrBadParameter.With("model")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Completion
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/tasks", kind, "completions")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
