package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Memory is a snippet of information stored for the current user and
// retrieved into chat context by vector search.
type Memory struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

// MemoryQueryResult is a vector search result over memories, in the
// nested layout of the underlying vector store with one inner list
// per query.
type MemoryQueryResult struct {
	IDs       [][]string         `json:"ids"`
	Documents [][]string         `json:"documents"`
	Metadatas [][]map[string]any `json:"metadatas"`
	Distances [][]float64        `json:"distances"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Memory) String() string {
	return Stringify(m)
}
