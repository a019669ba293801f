package openwebui_test

import (
	"bytes"
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

var testPDF = []byte("%PDF-1.4 test document")

// newUtilsTestServer mimics the utils router.
func newUtilsTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/utils/code/format", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"code": body.Code + "\n"})
	})

	mux.HandleFunc("/api/v1/utils/code/execute", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"stdout": "4\n", "stderr": "", "result": nil})
	})

	mux.HandleFunc("/api/v1/utils/markdown", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Markdown string `json:"md"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"html": "<h1>Title</h1>"})
	})

	mux.HandleFunc("/api/v1/utils/gravatar", func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			http.Error(w, "email required", http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode("https://www.gravatar.com/avatar/deadbeef")
	})

	mux.HandleFunc("/api/v1/utils/pdf", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title    string                     `json:"title"`
			Messages []schema.CompletionMessage `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if body.Title == "" || len(body.Messages) == 0 {
			http.Error(w, "title and messages required", http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(testPDF)
	})

	mux.HandleFunc("/api/v1/utils/db/download", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("sqlite database"))
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestFormatCode(t *testing.T) {
	srv := newUtilsTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	formatted, err := c.FormatCode(context.Background(), "print( 1+1)")
	if err != nil {
		t.Fatal(err)
	}
	if formatted != "print( 1+1)\n" {
		t.Fatalf("unexpected formatted code %q", formatted)
	}

	// Empty code
	if _, err := c.FormatCode(context.Background(), ""); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestExecuteCode(t *testing.T) {
	srv := newUtilsTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	result, err := c.ExecuteCode(context.Background(), "print(2+2)")
	if err != nil {
		t.Fatal(err)
	}
	if stdout, _ := result["stdout"].(string); stdout != "4\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestMarkdownToHTML(t *testing.T) {
	srv := newUtilsTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	html, err := c.MarkdownToHTML(context.Background(), "# Title")
	if err != nil {
		t.Fatal(err)
	}
	if html != "<h1>Title</h1>" {
		t.Fatalf("unexpected html %q", html)
	}
}

func TestGetGravatar(t *testing.T) {
	srv := newUtilsTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	url, err := c.GetGravatar(context.Background(), "user@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://www.gravatar.com/avatar/deadbeef" {
		t.Fatalf("unexpected gravatar url %q", url)
	}

	// Empty email
	if _, err := c.GetGravatar(context.Background(), ""); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestExportChatPDF(t *testing.T) {
	srv := newUtilsTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	messages := []schema.CompletionMessage{
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Hi there"},
	}
	pdf, err := c.ExportChatPDF(context.Background(), "Test Chat", messages)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pdf, testPDF) {
		t.Fatalf("unexpected pdf content %q", pdf)
	}

	// Missing arguments
	if _, err := c.ExportChatPDF(context.Background(), "", messages); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
	if _, err := c.ExportChatPDF(context.Background(), "Test Chat", nil); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected ErrBadParameter, got %v", err)
	}
}

func TestDownloadDatabase(t *testing.T) {
	srv := newUtilsTestServer(t)
	defer srv.Close()
	c := newClient(t, srv.URL)

	db, err := c.DownloadDatabase(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(db) != "sqlite database" {
		t.Fatalf("unexpected database content %q", db)
	}
}
