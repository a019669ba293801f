package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Knowledge is a knowledge base. Files are only populated by the
// endpoints which return them, WriteAccess only by listing endpoints,
// and Warnings collects per-file errors from batch operations. A null
// AccessControl means public access and an empty map means private.
type Knowledge struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id,omitempty"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Meta          map[string]any `json:"meta,omitempty"`
	AccessControl map[string]any `json:"access_control,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
	UpdatedAt     int64          `json:"updated_at,omitempty"`
	User          *UserName      `json:"user,omitempty"`
	Files         []File         `json:"files,omitempty"`
	Warnings      map[string]any `json:"warnings,omitempty"`
	WriteAccess   *bool          `json:"write_access,omitempty"`
}

// KnowledgeList is a page of knowledge bases.
type KnowledgeList struct {
	Items []Knowledge `json:"items"`
	Total int         `json:"total"`
}

// KnowledgeFile is a file matched by a search across knowledge bases,
// carrying the knowledge base it belongs to.
type KnowledgeFile struct {
	File
	Knowledge *Knowledge `json:"knowledge,omitempty"`
}

// KnowledgeFileList is a page of knowledge file search results.
type KnowledgeFileList struct {
	Items []KnowledgeFile `json:"items"`
	Total int             `json:"total"`
}

// KnowledgeForm creates or updates a knowledge base. AccessControl is
// always marshalled so that null keeps its meaning of public access.
type KnowledgeForm struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	AccessControl map[string]any `json:"access_control"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k Knowledge) String() string {
	return Stringify(k)
}

func (k KnowledgeList) String() string {
	return Stringify(k)
}
