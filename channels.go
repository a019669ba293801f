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
// PUBLIC METHODS - LISTING

// ListChannels returns the channels the current user is a member of,
// with unread counts and the timestamp of the latest message.
func (c *Client) ListChannels(ctx context.Context) ([]schema.Channel, error) {
	// Perform request
	var response []schema.Channel
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ListAllChannels returns every channel for an admin, or the channels
// the current user is a member of otherwise.
func (c *Client) ListAllChannels(ctx context.Context) ([]schema.Channel, error) {
	// Perform request
	var response []schema.Channel
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels/list")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetDirectChannel returns the direct message channel with another
// user, creating it when none exists yet.
func (c *Client) GetDirectChannel(ctx context.Context, user string) (*schema.Channel, error) {
	if user == "" {
		return nil, ErrBadParameter.With("user id")
	}

	// Perform request
	var response schema.Channel
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels/users", user)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - LIFECYCLE

// CreateChannel creates a new channel. Admin only.
func (c *Client) CreateChannel(ctx context.Context, form schema.ChannelForm) (*schema.Channel, error) {
	if form.Name == "" {
		return nil, ErrBadParameter.With("name")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Channel
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels/create")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetChannel returns a channel with the per-caller membership fields
// populated.
func (c *Client) GetChannel(ctx context.Context, channel string) (*schema.Channel, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	}

	// Perform request
	var response schema.Channel
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels", channel)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// UpdateChannel updates the name, description or access control of a
// channel.
func (c *Client) UpdateChannel(ctx context.Context, channel string, form schema.ChannelForm) (*schema.Channel, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Channel
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// DeleteChannel removes a channel and its messages.
func (c *Client) DeleteChannel(ctx context.Context, channel string) (bool, error) {
	if channel == "" {
		return false, ErrBadParameter.With("channel id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/channels", channel, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MEMBERS

// GetChannelMembers returns a page of channel members. Use WithQuery
// to filter by name or email, WithOrderBy and WithDirection to sort,
// and WithPage to paginate.
func (c *Client) GetChannelMembers(ctx context.Context, channel string, opts ...opt.Opt) (*schema.UserList, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request, where the first page is returned unless requested
	// otherwise
	query := url.Values{opt.PageKey: []string{"1"}}
	for key, values := range o.Query(opt.QueryKey, opt.OrderByKey, opt.DirectionKey, opt.PageKey) {
		query[key] = values
	}

	// Perform request
	var response schema.UserList
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels", channel, "members"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// SetChannelMemberActive marks the current user as active or inactive
// in a channel. Active members receive message notifications.
func (c *Client) SetChannelMemberActive(ctx context.Context, channel string, active bool) (bool, error) {
	if channel == "" {
		return false, ErrBadParameter.With("channel id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		IsActive bool `json:"is_active"`
	}{IsActive: active})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "members/active")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// AddChannelMembers adds users and the members of groups to a channel,
// and returns the memberships which were created.
func (c *Client) AddChannelMembers(ctx context.Context, channel string, userIds, groupIds []string) ([]schema.ChannelMember, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	} else if len(userIds) == 0 && len(groupIds) == 0 {
		return nil, ErrBadParameter.With("user or group ids")
	}

	// Create request, where a nil list is sent as an empty array rather
	// than null
	form := struct {
		UserIds  []string `json:"user_ids"`
		GroupIds []string `json:"group_ids"`
	}{UserIds: userIds, GroupIds: groupIds}
	if form.UserIds == nil {
		form.UserIds = []string{}
	}
	if form.GroupIds == nil {
		form.GroupIds = []string{}
	}
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response []schema.ChannelMember
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "update/members/add")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// RemoveChannelMembers removes users from a channel and returns the
// number of memberships removed.
func (c *Client) RemoveChannelMembers(ctx context.Context, channel string, userIds ...string) (int, error) {
	if channel == "" {
		return 0, ErrBadParameter.With("channel id")
	} else if len(userIds) == 0 {
		return 0, ErrBadParameter.With("user ids")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		UserIds []string `json:"user_ids"`
	}{UserIds: userIds})
	if err != nil {
		return 0, err
	}

	// Perform request
	var response int
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "update/members/remove")); err != nil {
		return 0, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MESSAGES

// GetChannelMessages returns messages from a channel, most recent
// first. Use WithSkip and WithLimit to page through the history.
func (c *Client) GetChannelMessages(ctx context.Context, channel string, opts ...opt.Opt) ([]schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request, where the latest fifty messages are returned unless
	// requested otherwise
	query := url.Values{opt.SkipKey: []string{"0"}, opt.LimitKey: []string{"50"}}
	for key, values := range o.Query(opt.SkipKey, opt.LimitKey) {
		query[key] = values
	}

	// Perform request
	var response []schema.Message
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels", channel, "messages"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetChannelPinnedMessages returns the pinned messages of a channel.
// Use WithPage to paginate.
func (c *Client) GetChannelPinnedMessages(ctx context.Context, channel string, opts ...opt.Opt) ([]schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request, where the first page is returned unless requested
	// otherwise
	query := url.Values{opt.PageKey: []string{"1"}}
	for key, values := range o.Query(opt.PageKey) {
		query[key] = values
	}

	// Perform request
	var response []schema.Message
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels", channel, "messages/pinned"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// PostChannelMessage posts a new message to a channel. Set ReplyToID
// or ParentID on the form to reply or to post into a thread.
func (c *Client) PostChannelMessage(ctx context.Context, channel string, form schema.MessageForm) (*schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	} else if form.Content == "" {
		return nil, ErrBadParameter.With("content")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Message
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "messages/post")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetChannelMessage returns a single message with its poster and the
// message it replies to.
func (c *Client) GetChannelMessage(ctx context.Context, channel, message string) (*schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	} else if message == "" {
		return nil, ErrBadParameter.With("message id")
	}

	// Perform request
	var response schema.Message
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels", channel, "messages", message)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetChannelThreadMessages returns the replies in the thread rooted at
// a message. Use WithSkip and WithLimit to page through the thread.
func (c *Client) GetChannelThreadMessages(ctx context.Context, channel, message string, opts ...opt.Opt) ([]schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	} else if message == "" {
		return nil, ErrBadParameter.With("message id")
	}

	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request, where the latest fifty messages are returned unless
	// requested otherwise
	query := url.Values{opt.SkipKey: []string{"0"}, opt.LimitKey: []string{"50"}}
	for key, values := range o.Query(opt.SkipKey, opt.LimitKey) {
		query[key] = values
	}

	// Perform request
	var response []schema.Message
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/channels", channel, "messages", message, "thread"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateChannelMessage updates the content of a message.
func (c *Client) UpdateChannelMessage(ctx context.Context, channel, message string, form schema.MessageForm) (*schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	} else if message == "" {
		return nil, ErrBadParameter.With("message id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Message
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "messages", message, "update")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// PinChannelMessage pins or unpins a message in a channel.
func (c *Client) PinChannelMessage(ctx context.Context, channel, message string, pinned bool) (*schema.Message, error) {
	if channel == "" {
		return nil, ErrBadParameter.With("channel id")
	} else if message == "" {
		return nil, ErrBadParameter.With("message id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		IsPinned bool `json:"is_pinned"`
	}{IsPinned: pinned})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Message
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "messages", message, "pin")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// AddChannelMessageReaction adds an emoji reaction to a message.
func (c *Client) AddChannelMessageReaction(ctx context.Context, channel, message, name string) (bool, error) {
	if channel == "" {
		return false, ErrBadParameter.With("channel id")
	} else if message == "" {
		return false, ErrBadParameter.With("message id")
	} else if name == "" {
		return false, ErrBadParameter.With("reaction name")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Name string `json:"name"`
	}{Name: name})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "messages", message, "reactions/add")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// RemoveChannelMessageReaction removes the current user's reaction
// from a message.
func (c *Client) RemoveChannelMessageReaction(ctx context.Context, channel, message, name string) (bool, error) {
	if channel == "" {
		return false, ErrBadParameter.With("channel id")
	} else if message == "" {
		return false, ErrBadParameter.With("message id")
	} else if name == "" {
		return false, ErrBadParameter.With("reaction name")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Name string `json:"name"`
	}{Name: name})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/channels", channel, "messages", message, "reactions/remove")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// DeleteChannelMessage removes a message from a channel.
func (c *Client) DeleteChannelMessage(ctx context.Context, channel, message string) (bool, error) {
	if channel == "" {
		return false, ErrBadParameter.With("channel id")
	} else if message == "" {
		return false, ErrBadParameter.With("message id")
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("v1/channels", channel, "messages", message, "delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
