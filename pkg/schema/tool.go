package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is a workspace tool whose functions can be called by models
// during chat completion. Content holds the tool source code and
// Specs the JSON schema of each function it exports. User and
// HasUserValves are only populated by the endpoints which return
// them, and a null AccessControl means the tool is public.
type Tool struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id,omitempty"`
	Name          string           `json:"name"`
	Content       string           `json:"content,omitempty"`
	Specs         []map[string]any `json:"specs,omitempty"`
	Meta          ToolMeta         `json:"meta,omitzero"`
	AccessControl map[string]any   `json:"access_control,omitempty"`
	CreatedAt     int64            `json:"created_at,omitempty"`
	UpdatedAt     int64            `json:"updated_at,omitempty"`
	User          *UserName        `json:"user,omitempty"`
	HasUserValves *bool            `json:"has_user_valves,omitempty"`
}

// ToolMeta is tool metadata, usually parsed from the frontmatter of
// the tool source code.
type ToolMeta struct {
	Description string         `json:"description,omitempty"`
	Manifest    map[string]any `json:"manifest,omitempty"`
}

// ToolForm creates or updates a tool. AccessControl is always
// marshalled so that null keeps its meaning of a public tool.
type ToolForm struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Content       string         `json:"content"`
	Meta          ToolMeta       `json:"meta"`
	AccessControl map[string]any `json:"access_control"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Tool) String() string {
	return Stringify(t)
}
