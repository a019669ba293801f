package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Group is a user group. MemberCount is only populated by listing
// endpoints, and UserIDs only by the export endpoint.
type Group struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Data        map[string]any `json:"data,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
	Permissions map[string]any `json:"permissions,omitempty"`
	CreatedAt   int64          `json:"created_at"`
	UpdatedAt   int64          `json:"updated_at"`
	MemberCount *int           `json:"member_count,omitempty"`
	UserIDs     []string       `json:"user_ids,omitempty"`
}

// GroupForm creates or updates a group. Permissions follows the same
// shape as UserPermissions.
type GroupForm struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Permissions map[string]any `json:"permissions,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

// GroupUserIDsForm adds or removes group members by user id.
type GroupUserIDsForm struct {
	UserIDs []string `json:"user_ids,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (g Group) String() string {
	return Stringify(g)
}
