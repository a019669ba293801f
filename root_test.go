package openwebui_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newRootTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	// The health endpoint lives at the server root, outside /api
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"status": true})
	})

	mux.HandleFunc("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.Version{Version: "0.6.18", DeploymentID: "dep-1"})
	})

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.AppConfig{
			Status:  true,
			Name:    "Open WebUI",
			Version: "0.6.18",
			Features: map[string]bool{
				"auth":          true,
				"enable_signup": false,
			},
		})
	})

	mux.HandleFunc("/api/webhook", func(w http.ResponseWriter, r *http.Request) {
		url := "https://hooks.example.com/owui"
		if r.Method == http.MethodPost {
			var form struct {
				URL string `json:"url"`
			}
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			url = form.URL
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"url": url})
	})

	mux.HandleFunc("/api/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.UnifiedModelList{
			Data: []schema.UnifiedModel{
				{ID: "llama3:latest", Name: "llama3:latest", Object: "model", OwnedBy: "ollama"},
				{ID: "assistant", Name: "Assistant", Object: "model", OwnedBy: "ollama", Preset: true},
			},
		})
	})

	mux.HandleFunc("/api/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var request schema.CompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if request.Stream {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "streaming not supported"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.Completion{
			ID:    "chatcmpl-1",
			Model: request.Model,
			Choices: []schema.CompletionChoice{
				{Message: &schema.CompletionMessage{Role: "assistant", Content: "Hello there."}},
			},
		})
	})

	mux.HandleFunc("/api/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var request schema.EmbeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.EmbeddingList{
			Object: "list",
			Model:  request.Model,
			Data: []schema.Embedding{
				{Object: "embedding", Index: 0, Embedding: []float64{0.1, 0.2, 0.3}},
			},
		})
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestVersion(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	version, err := c.Version(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if version.Version != "0.6.18" {
		t.Fatalf("expected version=0.6.18, got %q", version.Version)
	}
	if version.DeploymentID != "dep-1" {
		t.Fatalf("expected deployment_id=dep-1, got %q", version.DeploymentID)
	}
}

func TestHealth_OutsideAPIPath(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	// The client endpoint includes /api, but health is served from the
	// server root
	up, err := c.Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !up {
		t.Fatal("expected status=true")
	}
}

func TestConfig(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	config, err := c.Config(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if config.Name != "Open WebUI" {
		t.Fatalf("expected name=Open WebUI, got %q", config.Name)
	}
	if !config.Features["auth"] {
		t.Fatal("expected auth feature enabled")
	}
	if config.Features["enable_signup"] {
		t.Fatal("expected signup feature disabled")
	}
}

func TestWebhookURL(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	url, err := c.GetWebhookURL(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://hooks.example.com/owui" {
		t.Fatalf("unexpected webhook url %q", url)
	}

	url, err = c.UpdateWebhookURL(context.Background(), "https://hooks.example.com/new")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://hooks.example.com/new" {
		t.Fatalf("expected updated url, got %q", url)
	}
}

func TestUnifiedModels(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	models, err := c.Models(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(models))
	}
	if models[0].ID != "llama3:latest" {
		t.Fatalf("unexpected model id %q", models[0].ID)
	}
	if !models[1].Preset {
		t.Fatal("expected second model to be a preset")
	}
}

func TestChatCompletion(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	completion, err := c.ChatCompletion(context.Background(), schema.CompletionRequest{
		Model: "llama3:latest",
		Messages: []schema.CompletionMessage{
			{Role: "user", Content: "Hello"},
		},
		// Stream is forced off by the client, so the server never
		// sees a streaming request
		Stream: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if completion.Text() != "Hello there." {
		t.Fatalf("unexpected completion text %q", completion.Text())
	}
	if completion.Model != "llama3:latest" {
		t.Fatalf("unexpected completion model %q", completion.Model)
	}
}

func TestChatCompletion_MissingArguments(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	if _, err := c.ChatCompletion(context.Background(), schema.CompletionRequest{}); err == nil {
		t.Fatal("expected error for missing model")
	}
	if _, err := c.ChatCompletion(context.Background(), schema.CompletionRequest{Model: "llama3:latest"}); err == nil {
		t.Fatal("expected error for missing messages")
	}
}

func TestEmbeddings(t *testing.T) {
	srv := newRootTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	embeddings, err := c.Embeddings(context.Background(), schema.EmbeddingRequest{
		Model: "nomic-embed-text",
		Input: "The quick brown fox",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(embeddings.Data) != 1 {
		t.Fatalf("expected 1 embedding, got %d", len(embeddings.Data))
	}
	if len(embeddings.Data[0].Embedding) != 3 {
		t.Fatalf("expected 3 dimensions, got %d", len(embeddings.Data[0].Embedding))
	}
}
