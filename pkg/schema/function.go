package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Function is a pipe, filter or action function. Type is one of
// "pipe", "filter" or "action", Content holds the function source
// code, and Valves and User are only populated by the endpoints
// which return them. A global function applies to every model.
type Function struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id,omitempty"`
	Name      string         `json:"name"`
	Type      string         `json:"type,omitempty"`
	Content   string         `json:"content,omitempty"`
	Meta      FunctionMeta   `json:"meta,omitzero"`
	Valves    map[string]any `json:"valves,omitempty"`
	IsActive  bool           `json:"is_active,omitempty"`
	IsGlobal  bool           `json:"is_global,omitempty"`
	CreatedAt int64          `json:"created_at,omitempty"`
	UpdatedAt int64          `json:"updated_at,omitempty"`
	User      *UserName      `json:"user,omitempty"`
}

// FunctionMeta is function metadata, usually parsed from the
// frontmatter of the function source code.
type FunctionMeta struct {
	Description string         `json:"description,omitempty"`
	Manifest    map[string]any `json:"manifest,omitempty"`
}

// FunctionForm creates or updates a function. The function type is
// derived from the source code.
type FunctionForm struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Content string       `json:"content"`
	Meta    FunctionMeta `json:"meta"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Function) String() string {
	return Stringify(f)
}
