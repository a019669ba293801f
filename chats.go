package openwebui

import (
	"context"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LISTING

// ListChats returns an abbreviated list of the current user's chats.
// Use WithPage to paginate, and WithIncludePinned and WithIncludeFolders
// to widen the listing.
func (c *Client) ListChats(ctx context.Context, opts ...opt.Opt) ([]schema.ChatTitleID, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/chats/")}
	if q := o.Query(opt.PageKey, opt.PinnedKey, opt.FoldersKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []schema.ChatTitleID
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListChatsForUser returns an abbreviated list of another user's chats.
func (c *Client) ListChatsForUser(ctx context.Context, userID string, opts ...opt.Opt) ([]schema.ChatTitleID, error) {
	if userID == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/chats/list/user", userID)}
	if q := o.Query(opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []schema.ChatTitleID
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// SearchChats returns chats whose title or content matches the text.
func (c *Client) SearchChats(ctx context.Context, text string, opts ...opt.Opt) ([]schema.ChatTitleID, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	query := o.Query(opt.PageKey)
	query.Set(opt.TextKey, text)
	reqOpts := []client.RequestOpt{client.OptPath("v1/chats/search"), client.OptQuery(query)}

	// Perform request
	var response []schema.ChatTitleID
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListPinnedChats returns the current user's pinned chats.
func (c *Client) ListPinnedChats(ctx context.Context) ([]schema.ChatTitleID, error) {
	// Perform request
	var response []schema.ChatTitleID
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/pinned")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListArchivedChats returns an abbreviated list of the current user's
// archived chats. Use WithQuery, WithOrderBy, WithDirection and
// WithPage to filter and paginate.
func (c *Client) ListArchivedChats(ctx context.Context, opts ...opt.Opt) ([]schema.ChatTitleID, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/chats/archived")}
	if q := o.Query(opt.PageKey, opt.QueryKey, opt.OrderByKey, opt.DirectionKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []schema.ChatTitleID
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetAllChats returns the current user's chats in full.
func (c *Client) GetAllChats(ctx context.Context) ([]schema.Chat, error) {
	// Perform request
	var response []schema.Chat
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/all")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetAllArchivedChats returns the current user's archived chats in full.
func (c *Client) GetAllArchivedChats(ctx context.Context) ([]schema.Chat, error) {
	// Perform request
	var response []schema.Chat
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/all/archived")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetAllChatsInDatabase returns every chat in the database, for any
// user.
func (c *Client) GetAllChatsInDatabase(ctx context.Context) ([]schema.Chat, error) {
	// Perform request
	var response []schema.Chat
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/all/db")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// CreateChat creates a new chat.
func (c *Client) CreateChat(ctx context.Context, form schema.ChatForm) (*schema.Chat, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats/new")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ImportChats imports chats preserving their original metadata and
// timestamps, and returns the imported chats.
func (c *Client) ImportChats(ctx context.Context, chats ...schema.ChatImportForm) ([]schema.Chat, error) {
	// Create request
	req, err := client.NewJSONRequest(struct {
		Chats []schema.ChatImportForm `json:"chats"`
	}{chats})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats/import")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetChat returns a chat by id.
func (c *Client) GetChat(ctx context.Context, id string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateChat replaces a chat's conversation state.
func (c *Client) UpdateChat(ctx context.Context, id string, form schema.ChatForm) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteChat removes a chat by id.
func (c *Client) DeleteChat(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/chats", id)); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// DeleteAllChats removes every chat belonging to the current user.
func (c *Client) DeleteAllChats(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/chats/")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// CloneChat copies a chat. An optional title names the copy, otherwise
// the server derives one from the original.
func (c *Client) CloneChat(ctx context.Context, id, title string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	var form struct {
		Title *string `json:"title"`
	}
	if title != "" {
		form.Title = types.Ptr(title)
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "clone")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MESSAGES

// UpdateChatMessage replaces the content of a single message within a
// chat.
func (c *Client) UpdateChatMessage(ctx context.Context, id, messageID, content string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}
	if messageID == "" {
		return nil, ErrBadParameter.With("message id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Content string `json:"content"`
	}{content})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "messages", messageID)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SendChatMessageEvent emits a socket event for a message, such as a
// status update or content replacement.
func (c *Client) SendChatMessageEvent(ctx context.Context, id, messageID, eventType string, data map[string]any) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("chat id")
	}
	if messageID == "" {
		return false, ErrBadParameter.With("message id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}{eventType, data})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "messages", messageID, "event")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - PIN AND ARCHIVE

// GetChatPinnedStatus reports whether a chat is pinned.
func (c *Client) GetChatPinnedStatus(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats", id, "pinned")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// ToggleChatPinned toggles whether a chat is pinned and returns the
// updated chat.
func (c *Client) ToggleChatPinned(ctx context.Context, id string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "pin")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ToggleChatArchive toggles whether a chat is archived and returns the
// updated chat.
func (c *Client) ToggleChatArchive(ctx context.Context, id string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "archive")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ArchiveAllChats archives every chat belonging to the current user.
func (c *Client) ArchiveAllChats(ctx context.Context) (bool, error) {
	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats/archive/all")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// UnarchiveAllChats restores every archived chat belonging to the
// current user.
func (c *Client) UnarchiveAllChats(ctx context.Context) (bool, error) {
	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats/unarchive/all")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SHARING

// GetSharedChat returns the read-only shared copy of a chat by its
// share id.
func (c *Client) GetSharedChat(ctx context.Context, shareID string) (*schema.Chat, error) {
	if shareID == "" {
		return nil, ErrBadParameter.With("share id")
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/share", shareID)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ShareChat creates or refreshes the read-only shared copy of a chat.
func (c *Client) ShareChat(ctx context.Context, id string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "share")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UnshareChat removes the shared copy of a chat.
func (c *Client) UnshareChat(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/chats", id, "share")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// CloneSharedChat copies a shared chat into the current user's chats.
func (c *Client) CloneSharedChat(ctx context.Context, id string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	req := client.NewRequestEx(http.MethodPost, client.ContentTypeJson)

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "clone/shared")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - FOLDERS

// GetChatsByFolder returns the full chats in a folder.
func (c *Client) GetChatsByFolder(ctx context.Context, folderID string) ([]schema.Chat, error) {
	if folderID == "" {
		return nil, ErrBadParameter.With("folder id")
	}

	// Perform request
	var response []schema.Chat
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/folder", folderID)); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListChatsByFolder returns an abbreviated list of the chats in a
// folder. Use WithPage to paginate.
func (c *Client) ListChatsByFolder(ctx context.Context, folderID string, opts ...opt.Opt) ([]map[string]any, error) {
	if folderID == "" {
		return nil, ErrBadParameter.With("folder id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	reqOpts := []client.RequestOpt{client.OptPath("v1/chats/folder", folderID, "list")}
	if q := o.Query(opt.PageKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response []map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// MoveChatToFolder moves a chat into a folder, or out of any folder
// when the folder id is empty.
func (c *Client) MoveChatToFolder(ctx context.Context, id, folderID string) (*schema.Chat, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Create request
	var form struct {
		FolderID *string `json:"folder_id"`
	}
	if folderID != "" {
		form.FolderID = types.Ptr(folderID)
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Chat
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "folder")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - TAGS

// ListChatTags returns every tag the current user has applied across
// their chats.
func (c *Client) ListChatTags(ctx context.Context) ([]schema.Tag, error) {
	// Perform request
	var response []schema.Tag
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats/all/tags")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetChatsByTag returns the chats carrying a tag. Use WithSkip and
// WithLimit to paginate.
func (c *Client) GetChatsByTag(ctx context.Context, name string, opts ...opt.Opt) ([]schema.ChatTitleID, error) {
	if name == "" {
		return nil, ErrBadParameter.With("tag name")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	form := struct {
		Name  string `json:"name"`
		Skip  uint   `json:"skip"`
		Limit uint   `json:"limit"`
	}{Name: name, Limit: 50}
	if o.Has(opt.SkipKey) {
		form.Skip = o.GetUint(opt.SkipKey)
	}
	if o.Has(opt.LimitKey) {
		form.Limit = o.GetUint(opt.LimitKey)
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.ChatTitleID
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats/tags")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetChatTags returns the tags on a chat.
func (c *Client) GetChatTags(ctx context.Context, id string) ([]schema.Tag, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response []schema.Tag
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/chats", id, "tags")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// AddChatTag adds a tag to a chat and returns the chat's tags.
func (c *Client) AddChatTag(ctx context.Context, id, name string) ([]schema.Tag, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}
	if name == "" {
		return nil, ErrBadParameter.With("tag name")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Name string `json:"name"`
	}{name})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Tag
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "tags")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// DeleteChatTag removes a tag from a chat and returns the remaining
// tags.
func (c *Client) DeleteChatTag(ctx context.Context, id, name string) ([]schema.Tag, error) {
	if id == "" {
		return nil, ErrBadParameter.With("chat id")
	}
	if name == "" {
		return nil, ErrBadParameter.With("tag name")
	}

	// Create request
	req, err := client.NewJSONRequestEx(http.MethodDelete, struct {
		Name string `json:"name"`
	}{name}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.Tag
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/chats", id, "tags")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// DeleteAllChatTags removes every tag from a chat.
func (c *Client) DeleteAllChatTags(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrBadParameter.With("chat id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/chats", id, "tags/all")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
