package openwebui

import (
	"context"
	"io"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Workspace is a snapshot of the workspace resources owned by or
// shared with the current user.
type Workspace struct {
	Models    []schema.Model     `json:"models,omitempty"`
	Prompts   []schema.Prompt    `json:"prompts,omitempty"`
	Tools     []schema.Tool      `json:"tools,omitempty"`
	Knowledge []schema.Knowledge `json:"knowledge,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - WORKFLOWS

// ResolveModel returns the unified model with the given id, or failing
// that the model whose display name matches. Lookups are cached for a
// short period, so repeated calls do not hit the endpoint every time.
func (c *Client) ResolveModel(ctx context.Context, name string) (*schema.UnifiedModel, error) {
	if name == "" {
		return nil, ErrBadParameter.With("name")
	}
	return c.ModelCache.GetModel(ctx, name, func(ctx context.Context) ([]schema.UnifiedModel, error) {
		return c.Models(ctx)
	})
}

// NewChatWithPrompt creates a chat seeded with a user prompt, runs a
// completion for it, and stores the assistant reply in the chat. The
// chat is created with the server's default title; use GenerateTitle
// to name it afterwards. Returns the chat with the reply appended.
func (c *Client) NewChatWithPrompt(ctx context.Context, model, prompt string) (*schema.Chat, error) {
	if prompt == "" {
		return nil, ErrBadParameter.With("prompt")
	}

	// Resolve the model first so a bad name fails before a chat is
	// created
	resolved, err := c.ResolveModel(ctx, model)
	if err != nil {
		return nil, err
	}

	// Compose the conversation document: a user message with a pending
	// assistant reply, linked parent to child
	now := time.Now().Unix()
	userID := uuid.NewString()
	assistantID := uuid.NewString()
	userMessage := map[string]any{
		"id":          userID,
		"parentId":    nil,
		"childrenIds": []string{assistantID},
		"role":        "user",
		"content":     prompt,
		"models":      []string{resolved.ID},
		"timestamp":   now,
	}
	assistantMessage := map[string]any{
		"id":          assistantID,
		"parentId":    userID,
		"childrenIds": []string{},
		"role":        "assistant",
		"content":     "",
		"model":       resolved.ID,
		"modelName":   resolved.Name,
		"timestamp":   now,
	}

	// Create the chat
	chat, err := c.CreateChat(ctx, schema.ChatForm{
		Chat: map[string]any{
			"title":  "New Chat",
			"models": []string{resolved.ID},
			"history": map[string]any{
				"messages": map[string]any{
					userID:      userMessage,
					assistantID: assistantMessage,
				},
				"currentId": assistantID,
			},
			"messages": []map[string]any{userMessage, assistantMessage},
		},
	})
	if err != nil {
		return nil, err
	}

	// Run the completion against the stored chat
	completion, err := c.ChatCompletion(ctx, schema.CompletionRequest{
		Model: resolved.ID,
		Messages: []schema.CompletionMessage{
			{Role: "user", Content: prompt},
		},
		ChatID: chat.ID,
		ID:     assistantID,
	})
	if err != nil {
		return nil, err
	}

	// Store the assistant reply
	return c.UpdateChatMessage(ctx, chat.ID, assistantID, completion.Text())
}

// UploadToKnowledge uploads a file and adds it to a knowledge base, so
// its content is indexed for retrieval. The file remains uploaded when
// indexing fails; callers can retry with AddKnowledgeFile or remove it
// with DeleteFile.
func (c *Client) UploadToKnowledge(ctx context.Context, id, filename string, body io.Reader, opts ...opt.Opt) (*schema.Knowledge, error) {
	if id == "" {
		return nil, ErrBadParameter.With("knowledge id")
	}

	// Upload the file
	file, err := c.UploadFile(ctx, filename, body, opts...)
	if err != nil {
		return nil, err
	}

	// Add it to the knowledge base
	return c.AddKnowledgeFile(ctx, id, file.ID)
}

// ExportWorkspace fetches the workspace models, prompts, tools and
// knowledge bases concurrently and returns them as one snapshot. Any
// failure cancels the remaining fetches and is returned.
func (c *Client) ExportWorkspace(ctx context.Context) (*Workspace, error) {
	var workspace Workspace

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		workspace.Models, err = c.ExportModels(ctx)
		return
	})
	g.Go(func() (err error) {
		workspace.Prompts, err = c.ListPrompts(ctx)
		return
	})
	g.Go(func() (err error) {
		workspace.Tools, err = c.ExportTools(ctx)
		return
	})
	g.Go(func() (err error) {
		workspace.Knowledge, err = c.ListAllKnowledge(ctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Return the snapshot
	return &workspace, nil
}
