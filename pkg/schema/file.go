package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// File is an uploaded file. Data holds the processing output, with the
// extracted text under "content" and the processing state under
// "status". Meta gains a collection name once the file has been
// indexed for retrieval. A null AccessControl means the file is
// public.
type File struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id,omitempty"`
	Hash          *string        `json:"hash,omitempty"`
	Filename      string         `json:"filename,omitempty"`
	Path          *string        `json:"path,omitempty"`
	Data          map[string]any `json:"data,omitempty"`
	Meta          FileMeta       `json:"meta,omitzero"`
	AccessControl map[string]any `json:"access_control,omitempty"`
	CreatedAt     int64          `json:"created_at,omitempty"`
	UpdatedAt     int64          `json:"updated_at,omitempty"`
}

// FileMeta describes the uploaded content.
type FileMeta struct {
	Name           string `json:"name,omitempty"`
	ContentType    string `json:"content_type,omitempty"`
	Size           int64  `json:"size,omitempty"`
	CollectionName string `json:"collection_name,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f File) String() string {
	return Stringify(f)
}
