package openwebui

import (
	"context"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - CONFIG

// GetRetrievalStatus returns the status of the document retrieval
// system, including the active embedding engine and model.
func (c *Client) GetRetrievalStatus(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/retrieval/")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetEmbeddingConfig returns the embedding engine configuration.
func (c *Client) GetEmbeddingConfig(ctx context.Context) (map[string]any, error) {
	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/retrieval/embedding")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateEmbeddingConfig changes the embedding engine and model.
// Documents indexed with the previous model have to be reindexed
// before they can be queried again.
func (c *Client) UpdateEmbeddingConfig(ctx context.Context, form schema.EmbeddingUpdateForm) (map[string]any, error) {
	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/embedding/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// UpdateRetrievalConfig updates the retrieval settings. Only the
// fields which are set are changed on the server.
func (c *Client) UpdateRetrievalConfig(ctx context.Context, config schema.RetrievalConfig) (map[string]any, error) {
	// Create request
	req, err := client.NewJSONRequest(config)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/config/update")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - PROCESSING

// ProcessFile indexes an uploaded file so that it can be queried.
func (c *Client) ProcessFile(ctx context.Context, form schema.ProcessFileForm) (map[string]any, error) {
	if form.FileID == "" {
		return nil, ErrBadParameter.With("file id")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/process/file")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ProcessText indexes a piece of text so that it can be queried.
func (c *Client) ProcessText(ctx context.Context, form schema.ProcessTextForm) (map[string]any, error) {
	if form.Name == "" || form.Content == "" {
		return nil, ErrBadParameter.With("name and content are required")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/process/text")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ProcessWeb fetches a web page and indexes its content.
func (c *Client) ProcessWeb(ctx context.Context, form schema.ProcessURLForm) (map[string]any, error) {
	if form.URL == "" {
		return nil, ErrBadParameter.With("url")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/process/web")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ProcessYouTube fetches the transcript of a YouTube video and
// indexes it.
func (c *Client) ProcessYouTube(ctx context.Context, form schema.ProcessURLForm) (map[string]any, error) {
	if form.URL == "" {
		return nil, ErrBadParameter.With("url")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/process/youtube")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ProcessWebSearch runs the queries through the configured web
// search engine and indexes the results.
func (c *Client) ProcessWebSearch(ctx context.Context, queries ...string) (map[string]any, error) {
	if len(queries) == 0 {
		return nil, ErrBadParameter.With("queries")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Queries []string `json:"queries"`
	}{queries})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/process/web/search")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// ProcessFilesBatch indexes several files into a collection in one
// call, returning which files succeeded and which failed.
func (c *Client) ProcessFilesBatch(ctx context.Context, collection string, files []schema.File) (*schema.BatchProcessResponse, error) {
	if collection == "" {
		return nil, ErrBadParameter.With("collection name")
	}
	if len(files) == 0 {
		return nil, ErrBadParameter.With("files")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		Files          []schema.File `json:"files"`
		CollectionName string        `json:"collection_name"`
	}{files, collection})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.BatchProcessResponse
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/process/files/batch")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - QUERYING

// QueryDocument searches a single collection for chunks matching the
// query.
func (c *Client) QueryDocument(ctx context.Context, form schema.QueryDocumentForm) (map[string]any, error) {
	if form.CollectionName == "" {
		return nil, ErrBadParameter.With("collection name")
	}
	if form.Query == "" {
		return nil, ErrBadParameter.With("query")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/query/doc")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// QueryCollections searches several collections for chunks matching
// the query.
func (c *Client) QueryCollections(ctx context.Context, form schema.QueryCollectionsForm) (map[string]any, error) {
	if len(form.CollectionNames) == 0 {
		return nil, ErrBadParameter.With("collection names")
	}
	if form.Query == "" {
		return nil, ErrBadParameter.With("query")
	}

	// Create request
	req, err := client.NewJSONRequest(form)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/query/collection")); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

// GetTextEmbeddings returns the embedding vector for a piece of
// text, using the configured embedding model.
func (c *Client) GetTextEmbeddings(ctx context.Context, text string) (map[string]any, error) {
	if text == "" {
		return nil, ErrBadParameter.With("text")
	}

	// Perform request
	var response map[string]any
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("v1/retrieval/ef", text)); err != nil {
		return nil, err
	}

	// Return the response
	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - MAINTENANCE

// DeleteRetrievalFile removes a file's chunks from a collection.
func (c *Client) DeleteRetrievalFile(ctx context.Context, collection, file string) (bool, error) {
	if collection == "" {
		return false, ErrBadParameter.With("collection name")
	}
	if file == "" {
		return false, ErrBadParameter.With("file id")
	}

	// Create request
	req, err := client.NewJSONRequest(struct {
		CollectionName string `json:"collection_name"`
		FileID         string `json:"file_id"`
	}{collection, file})
	if err != nil {
		return false, err
	}

	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("v1/retrieval/delete")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// ResetVectorDB removes every indexed document from the vector
// database.
func (c *Client) ResetVectorDB(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/retrieval/reset/db")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}

// ResetUploads removes every uploaded file from the upload
// directory.
func (c *Client) ResetUploads(ctx context.Context) (bool, error) {
	// Perform request
	var response bool
	if err := c.DoWithContext(ctx, client.NewRequestEx(http.MethodPost, client.ContentTypeJson), &response, client.OptPath("v1/retrieval/reset/uploads")); err != nil {
		return false, err
	}

	// Return the response
	return response, nil
}
