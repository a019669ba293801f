package openwebui_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	openwebui "github.com/mutablelogic/go-openwebui"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// newWorkflowTestServer mimics the endpoints the workflow helpers
// compose: unified models, chat creation, completions, message
// updates, file upload and knowledge indexing.
func newWorkflowTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.UnifiedModelList{
			Data: []schema.UnifiedModel{
				{ID: "llama3:latest", Name: "Llama 3", Object: "model", OwnedBy: "ollama"},
				{ID: "gpt-4o", Name: "GPT-4o", Object: "model", OwnedBy: "openai"},
			},
		})
	})

	mux.HandleFunc("/api/v1/chats/new", func(w http.ResponseWriter, r *http.Request) {
		var form schema.ChatForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created := schema.Chat{ID: "chat-1", UserID: "user-1", Chat: form.Chat}
		if title, ok := form.Chat["title"].(string); ok {
			created.Title = title
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(created)
	})

	mux.HandleFunc("/api/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		var request schema.CompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if request.ChatID == "" || request.ID == "" {
			http.Error(w, "completion not attached to a chat message", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.Completion{
			ID:    "cmpl-1",
			Model: request.Model,
			Choices: []schema.CompletionChoice{
				{Message: &schema.CompletionMessage{Role: "assistant", Content: "Hello from " + request.Model}},
			},
		})
	})

	mux.HandleFunc("/api/v1/chats/chat-1/messages/", func(w http.ResponseWriter, r *http.Request) {
		messageId := strings.TrimPrefix(r.URL.Path, "/api/v1/chats/chat-1/messages/")
		if messageId == "" || strings.Contains(messageId, "/") {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.Chat{
			ID:     "chat-1",
			UserID: "user-1",
			Title:  "New Chat",
			Chat: map[string]any{
				"history": map[string]any{
					"currentId": messageId,
					"messages": map[string]any{
						messageId: map[string]any{"id": messageId, "role": "assistant", "content": body.Content},
					},
				},
			},
		})
	})

	mux.HandleFunc("/api/v1/files/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/files/" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.File{ID: "file-1", UserID: "user-1", Filename: header.Filename})
	})

	mux.HandleFunc("/api/v1/knowledge/kb-1/file/add", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			FileID string `json:"file_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if body.FileID == "" {
			http.Error(w, "file_id required", http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.Knowledge{
			ID:   "kb-1",
			Name: "Test Knowledge",
			Files: []schema.File{
				{ID: body.FileID, Filename: "notes.txt"},
			},
		})
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestResolveModel(t *testing.T) {
	srv := newWorkflowTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	// By id
	model, err := c.ResolveModel(context.Background(), "llama3:latest")
	if err != nil {
		t.Fatal(err)
	}
	if model.ID != "llama3:latest" {
		t.Fatalf("unexpected model id %q", model.ID)
	}

	// By display name
	model, err = c.ResolveModel(context.Background(), "GPT-4o")
	if err != nil {
		t.Fatal(err)
	}
	if model.ID != "gpt-4o" {
		t.Fatalf("unexpected model id %q", model.ID)
	}

	// Unknown model
	if _, err := c.ResolveModel(context.Background(), "missing"); !errors.Is(err, openwebui.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Empty name
	if _, err := c.ResolveModel(context.Background(), ""); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestNewChatWithPrompt(t *testing.T) {
	srv := newWorkflowTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	chat, err := c.NewChatWithPrompt(context.Background(), "Llama 3", "Say hello")
	if err != nil {
		t.Fatal(err)
	}
	if chat.ID != "chat-1" {
		t.Fatalf("unexpected chat id %q", chat.ID)
	}

	// The assistant reply should be stored in the returned chat
	history, ok := chat.Chat["history"].(map[string]any)
	if !ok {
		t.Fatal("expected chat history")
	}
	currentId, ok := history["currentId"].(string)
	if !ok || currentId == "" {
		t.Fatal("expected a current message id")
	}
	messages, ok := history["messages"].(map[string]any)
	if !ok {
		t.Fatal("expected history messages")
	}
	message, ok := messages[currentId].(map[string]any)
	if !ok {
		t.Fatalf("expected message %q", currentId)
	}
	if content, _ := message["content"].(string); content != "Hello from llama3:latest" {
		t.Fatalf("unexpected reply content %q", content)
	}
}

func TestNewChatWithPrompt_MissingArguments(t *testing.T) {
	srv := newWorkflowTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	if _, err := c.NewChatWithPrompt(context.Background(), "Llama 3", ""); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
	if _, err := c.NewChatWithPrompt(context.Background(), "missing", "Say hello"); !errors.Is(err, openwebui.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUploadToKnowledge(t *testing.T) {
	srv := newWorkflowTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	knowledge, err := c.UploadToKnowledge(context.Background(), "kb-1", "notes.txt", strings.NewReader("the content"))
	if err != nil {
		t.Fatal(err)
	}
	if knowledge.ID != "kb-1" {
		t.Fatalf("unexpected knowledge id %q", knowledge.ID)
	}
	if len(knowledge.Files) != 1 || knowledge.Files[0].ID != "file-1" {
		t.Fatalf("expected uploaded file in knowledge, got %v", knowledge.Files)
	}

	// Empty knowledge id
	if _, err := c.UploadToKnowledge(context.Background(), "", "notes.txt", strings.NewReader("x")); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestExportWorkspace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/models/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Model{{ID: "custom-model", Name: "Custom Model"}})
	})
	mux.HandleFunc("/api/v1/prompts/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Prompt{{Command: "/summarize", Title: "Summarize"}})
	})
	mux.HandleFunc("/api/v1/tools/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Tool{{ID: "calculator", Name: "Calculator"}})
	})
	mux.HandleFunc("/api/v1/knowledge/list", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Knowledge{{ID: "kb-1", Name: "Docs"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newClient(t, srv.URL)

	workspace, err := c.ExportWorkspace(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(workspace.Models) != 1 || workspace.Models[0].ID != "custom-model" {
		t.Fatalf("unexpected models %v", workspace.Models)
	}
	if len(workspace.Prompts) != 1 || workspace.Prompts[0].Command != "/summarize" {
		t.Fatalf("unexpected prompts %v", workspace.Prompts)
	}
	if len(workspace.Tools) != 1 || workspace.Tools[0].ID != "calculator" {
		t.Fatalf("unexpected tools %v", workspace.Tools)
	}
	if len(workspace.Knowledge) != 1 || workspace.Knowledge[0].ID != "kb-1" {
		t.Fatalf("unexpected knowledge %v", workspace.Knowledge)
	}
}

func TestExportWorkspace_Error(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/models/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Model{})
	})
	mux.HandleFunc("/api/v1/prompts/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/v1/tools/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Tool{})
	})
	mux.HandleFunc("/api/v1/knowledge/list", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Knowledge{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newClient(t, srv.URL)

	if _, err := c.ExportWorkspace(context.Background()); !errors.Is(err, openwebui.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
}
