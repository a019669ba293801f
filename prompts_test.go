package openwebui_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	openwebui "github.com/mutablelogic/go-openwebui"
	schema "github.com/mutablelogic/go-openwebui/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// newPromptTestServer mimics the prompts router for a single known
// prompt command.
func newPromptTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	prompt := schema.Prompt{
		Command:   "/summarize",
		UserID:    "user-1",
		Title:     "Summarize",
		Content:   "Summarize the following text: {{CLIPBOARD}}",
		Timestamp: 1700000000,
	}

	mux.HandleFunc("/api/v1/prompts/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/prompts/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Prompt{prompt})
	})

	mux.HandleFunc("/api/v1/prompts/list", func(w http.ResponseWriter, r *http.Request) {
		withUser := prompt
		withUser.User = &schema.UserName{ID: "user-1", Name: "Alice"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Prompt{withUser})
	})

	mux.HandleFunc("/api/v1/prompts/create", func(w http.ResponseWriter, r *http.Request) {
		var form schema.PromptForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created := prompt
		created.Command = form.Command
		created.Title = form.Title
		created.Content = form.Content
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(created)
	})

	// The path carries the command without its leading slash
	mux.HandleFunc("/api/v1/prompts/command/summarize", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prompt)
	})

	mux.HandleFunc("/api/v1/prompts/command/summarize/update", func(w http.ResponseWriter, r *http.Request) {
		var form schema.PromptForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updated := prompt
		updated.Title = form.Title
		updated.Content = form.Content
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	})

	mux.HandleFunc("/api/v1/prompts/command/summarize/delete", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(true)
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestListPrompts(t *testing.T) {
	srv := newPromptTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	prompts, err := c.ListPrompts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(prompts) != 1 || prompts[0].Command != "/summarize" {
		t.Fatalf("unexpected prompts %v", prompts)
	}
}

func TestGetPrompt(t *testing.T) {
	srv := newPromptTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	// The leading slash is stripped from the path
	prompt, err := c.GetPrompt(context.Background(), "/summarize")
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Title != "Summarize" {
		t.Fatalf("unexpected prompt %v", prompt)
	}

	// Without the leading slash resolves the same prompt
	prompt, err = c.GetPrompt(context.Background(), "summarize")
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Command != "/summarize" {
		t.Fatalf("unexpected prompt %v", prompt)
	}

	if _, err := c.GetPrompt(context.Background(), "/"); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestCreatePrompt(t *testing.T) {
	srv := newPromptTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	prompt, err := c.CreatePrompt(context.Background(), schema.PromptForm{
		Command: "/translate",
		Title:   "Translate",
		Content: "Translate to French: {{CLIPBOARD}}",
	})
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Command != "/translate" {
		t.Fatalf("unexpected prompt %v", prompt)
	}
}

func TestUpdatePrompt(t *testing.T) {
	srv := newPromptTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	prompt, err := c.UpdatePrompt(context.Background(), "/summarize", schema.PromptForm{
		Command: "/summarize",
		Title:   "Summarize v2",
		Content: "Summarize concisely: {{CLIPBOARD}}",
	})
	if err != nil {
		t.Fatal(err)
	}
	if prompt.Title != "Summarize v2" {
		t.Fatalf("unexpected prompt %v", prompt)
	}
}

func TestDeletePrompt(t *testing.T) {
	srv := newPromptTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	deleted, err := c.DeletePrompt(context.Background(), "/summarize")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected deletion")
	}
}
