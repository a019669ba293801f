package openwebui_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	openwebui "github.com/mutablelogic/go-openwebui"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// newImageTestServer mimics the images router configured for an
// OpenAI image generation engine.
func newImageTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	config := schema.ImagesConfig{
		EnableImageGeneration:    true,
		Engine:                   "openai",
		Model:                    "dall-e-3",
		Size:                     types.Ptr("1024x1024"),
		OpenAIAPIBaseURL:         "https://api.openai.com/v1",
		OpenAIAPIKey:             "sk-test",
		ComfyUIWorkflowNodes:     []map[string]any{},
		EditComfyUIWorkflowNodes: []map[string]any{},
	}

	mux.HandleFunc("/api/v1/images/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})

	mux.HandleFunc("/api/v1/images/config/update", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var update schema.ImagesConfig
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if update.ComfyUIWorkflowNodes == nil || update.EditComfyUIWorkflowNodes == nil {
			http.Error(w, "workflow nodes cannot be null", http.StatusBadRequest)
			return
		}
		config = update
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})

	mux.HandleFunc("/api/v1/images/config/url/verify", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(true)
	})

	mux.HandleFunc("/api/v1/images/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.ImageModel{
			{ID: "dall-e-3", Name: "DALL-E 3"},
			{ID: "dall-e-2", Name: "DALL-E 2"},
		})
	})

	mux.HandleFunc("/api/v1/images/generations", func(w http.ResponseWriter, r *http.Request) {
		var form schema.CreateImageForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Prompt == "" {
			http.Error(w, "missing prompt", http.StatusBadRequest)
			return
		}
		n := form.N
		if n == 0 {
			n = 1
		}
		images := make([]schema.Image, 0, n)
		for i := 0; i < n; i++ {
			images = append(images, schema.Image{URL: fmt.Sprintf("/cache/image/generations/img-%d.png", i+1)})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(images)
	})

	mux.HandleFunc("/api/v1/images/edit", func(w http.ResponseWriter, r *http.Request) {
		var form schema.EditImageForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Image == nil || form.Prompt == "" {
			http.Error(w, "missing image or prompt", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Image{{URL: "/cache/image/edit/img-1.png"}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestImagesConfig(t *testing.T) {
	srv := newImageTestServer(t)
	client := newClient(t, srv.URL)

	config, err := client.GetImagesConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if config.Engine != "openai" {
		t.Fatalf("unexpected engine %q", config.Engine)
	}
	if types.Value(config.Size) != "1024x1024" {
		t.Fatalf("unexpected size %v", config.Size)
	}

	// A nil workflow node list should still reach the server as an
	// empty array
	config.Model = "dall-e-2"
	config.ComfyUIWorkflowNodes = nil
	updated, err := client.UpdateImagesConfig(context.Background(), *config)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Model != "dall-e-2" {
		t.Fatalf("unexpected model %q", updated.Model)
	}
}

func TestVerifyImagesURL(t *testing.T) {
	srv := newImageTestServer(t)
	client := newClient(t, srv.URL)

	verified, err := client.VerifyImagesURL(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !verified {
		t.Fatal("expected the image generation url to verify")
	}
}

func TestListImageModels(t *testing.T) {
	srv := newImageTestServer(t)
	client := newClient(t, srv.URL)

	models, err := client.ListImageModels(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 2 || models[0].ID != "dall-e-3" {
		t.Fatalf("unexpected models %v", models)
	}
}

func TestGenerateImages(t *testing.T) {
	srv := newImageTestServer(t)
	client := newClient(t, srv.URL)

	images, err := client.GenerateImages(context.Background(), schema.CreateImageForm{
		Prompt: "A sunrise over the mountains",
		N:      2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 2 || images[0].URL == "" {
		t.Fatalf("unexpected images %v", images)
	}

	// The prompt is required
	if _, err := client.GenerateImages(context.Background(), schema.CreateImageForm{}); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestEditImage(t *testing.T) {
	srv := newImageTestServer(t)
	client := newClient(t, srv.URL)

	images, err := client.EditImage(context.Background(), schema.EditImageForm{
		Image:  "data:image/png;base64,iVBORw0KGgo=",
		Prompt: "Make the sky purple",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 1 {
		t.Fatalf("unexpected images %v", images)
	}

	// The image is required
	if _, err := client.EditImage(context.Background(), schema.EditImageForm{Prompt: "Make the sky purple"}); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}
