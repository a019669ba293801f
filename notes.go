package openwebui

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListNotes returns the notes visible to the current user, with
// owner information.
func (c *Client) ListNotes(ctx context.Context) ([]schema.Note, error) {
	// Perform request
	var response []schema.Note
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/notes/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// SearchNotes returns a page of notes matching the criteria. Use
// WithQuery to filter by title, WithView to restrict to created or
// shared notes, WithPermission to filter by access level, WithOrderBy
// and WithDirection to sort, and WithPage to paginate.
func (c *Client) SearchNotes(ctx context.Context, opts ...opt.Opt) (*schema.NoteList, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/notes/search")}
	if q := o.Query(opt.QueryKey, opt.ViewKey, opt.PermissionKey, opt.OrderByKey, opt.DirectionKey, opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.NoteList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// CreateNote creates a new note.
func (c *Client) CreateNote(ctx context.Context, form schema.NoteForm) (*schema.Note, error) {
	if form.Title == "" {
		return nil, ErrBadParameter.With("title")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Note
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/notes/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetNote returns a note by its identifier.
func (c *Client) GetNote(ctx context.Context, id string) (*schema.Note, error) {
	if id == "" {
		return nil, ErrBadParameter.With("note id")
	}

	// Perform request
	var response schema.Note
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/notes", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateNote updates a note by its identifier.
func (c *Client) UpdateNote(ctx context.Context, id string, form schema.NoteForm) (*schema.Note, error) {
	if id == "" {
		return nil, ErrBadParameter.With("note id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Note
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/notes", id, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteNote removes a note by its identifier.
func (c *Client) DeleteNote(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("note id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/notes", id, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
