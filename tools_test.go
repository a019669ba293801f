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

const testToolContent = `"""
title: Calculator
"""

class Tools:
    def add(self, a: int, b: int) -> int:
        return a + b
`

// newToolTestServer mimics the tools router for a single known tool.
func newToolTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	tool := schema.Tool{
		ID:      "calculator",
		UserID:  "user-1",
		Name:    "Calculator",
		Content: testToolContent,
		Specs: []map[string]any{
			{"name": "add", "parameters": map[string]any{"type": "object"}},
		},
		Meta:      schema.ToolMeta{Description: "Basic arithmetic"},
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}
	valves := map[string]any{"priority": float64(1)}

	mux.HandleFunc("/api/v1/tools/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tools/" {
			http.NotFound(w, r)
			return
		}
		listed := tool
		listed.Content = ""
		listed.Specs = nil
		listed.User = &schema.UserName{ID: "user-1", Name: "Alice"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Tool{listed})
	})

	mux.HandleFunc("/api/v1/tools/list", func(w http.ResponseWriter, r *http.Request) {
		listed := tool
		listed.Content = ""
		listed.Specs = nil
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Tool{listed})
	})

	mux.HandleFunc("/api/v1/tools/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Tool{tool})
	})

	mux.HandleFunc("/api/v1/tools/load/url", func(w http.ResponseWriter, r *http.Request) {
		var form struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.URL == "" {
			http.Error(w, "missing url", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"name": "Calculator", "content": testToolContent})
	})

	mux.HandleFunc("/api/v1/tools/create", func(w http.ResponseWriter, r *http.Request) {
		var form schema.ToolForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		created := tool
		created.ID = form.ID
		created.Name = form.Name
		created.Content = ""
		created.Specs = nil
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(created)
	})

	mux.HandleFunc("/api/v1/tools/id/calculator", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tool)
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/update", func(w http.ResponseWriter, r *http.Request) {
		var form schema.ToolForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		updated := tool
		updated.Name = form.Name
		updated.Content = form.Content
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/delete", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(true)
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/valves", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(valves)
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/valves/spec", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"title":      "Valves",
			"type":       "object",
			"properties": map[string]any{"priority": map[string]any{"type": "integer"}},
		})
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/valves/update", func(w http.ResponseWriter, r *http.Request) {
		var form map[string]any
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(form)
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/valves/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{})
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/valves/user/spec", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"title": "UserValves", "type": "object"})
	})

	mux.HandleFunc("/api/v1/tools/id/calculator/valves/user/update", func(w http.ResponseWriter, r *http.Request) {
		var form map[string]any
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(form)
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestListTools(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	tools, err := client.ListTools(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tools) != 1 || tools[0].ID != "calculator" {
		t.Fatalf("unexpected tools %v", tools)
	}
	if tools[0].User == nil || tools[0].User.Name != "Alice" {
		t.Fatalf("expected owner details, got %v", tools[0].User)
	}

	all, err := client.ListAllTools(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one tool, got %d", len(all))
	}
}

func TestExportTools(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	tools, err := client.ExportTools(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tools) != 1 || tools[0].Content != testToolContent {
		t.Fatalf("expected tool content in export, got %v", tools)
	}
}

func TestLoadToolFromURL(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	loaded, err := client.LoadToolFromURL(context.Background(), "https://example.com/calculator.py")
	if err != nil {
		t.Fatal(err)
	}
	if loaded["name"] != "Calculator" {
		t.Fatalf("unexpected response %v", loaded)
	}

	if _, err := client.LoadToolFromURL(context.Background(), ""); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestCreateTool(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	tool, err := client.CreateTool(context.Background(), schema.ToolForm{
		ID:      "converter",
		Name:    "Unit Converter",
		Content: testToolContent,
	})
	if err != nil {
		t.Fatal(err)
	}
	if tool.ID != "converter" || tool.Name != "Unit Converter" {
		t.Fatalf("unexpected tool %v", tool)
	}

	if _, err := client.CreateTool(context.Background(), schema.ToolForm{Name: "No ID"}); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestGetTool(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	tool, err := client.GetTool(context.Background(), "calculator")
	if err != nil {
		t.Fatal(err)
	}
	if tool.Content != testToolContent {
		t.Fatalf("expected tool content, got %v", tool)
	}
	if len(tool.Specs) != 1 || tool.Specs[0]["name"] != "add" {
		t.Fatalf("unexpected specs %v", tool.Specs)
	}

	if _, err := client.GetTool(context.Background(), "missing"); !errors.Is(err, openwebui.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateTool(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	tool, err := client.UpdateTool(context.Background(), "calculator", schema.ToolForm{
		ID:      "calculator",
		Name:    "Calculator v2",
		Content: testToolContent,
	})
	if err != nil {
		t.Fatal(err)
	}
	if tool.Name != "Calculator v2" {
		t.Fatalf("unexpected tool %v", tool)
	}
}

func TestDeleteTool(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	deleted, err := client.DeleteTool(context.Background(), "calculator")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected tool to be deleted")
	}
}

func TestToolValves(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	valves, err := client.GetToolValves(context.Background(), "calculator")
	if err != nil {
		t.Fatal(err)
	}
	if valves["priority"] != float64(1) {
		t.Fatalf("unexpected valves %v", valves)
	}

	spec, err := client.GetToolValvesSpec(context.Background(), "calculator")
	if err != nil {
		t.Fatal(err)
	}
	if spec["title"] != "Valves" {
		t.Fatalf("unexpected spec %v", spec)
	}

	updated, err := client.UpdateToolValves(context.Background(), "calculator", map[string]any{"priority": float64(5)})
	if err != nil {
		t.Fatal(err)
	}
	if updated["priority"] != float64(5) {
		t.Fatalf("unexpected valves %v", updated)
	}
}

func TestToolUserValves(t *testing.T) {
	srv := newToolTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	valves, err := client.GetToolUserValves(context.Background(), "calculator")
	if err != nil {
		t.Fatal(err)
	}
	if len(valves) != 0 {
		t.Fatalf("expected empty valves, got %v", valves)
	}

	spec, err := client.GetToolUserValvesSpec(context.Background(), "calculator")
	if err != nil {
		t.Fatal(err)
	}
	if spec["title"] != "UserValves" {
		t.Fatalf("unexpected spec %v", spec)
	}

	updated, err := client.UpdateToolUserValves(context.Background(), "calculator", map[string]any{"verbose": true})
	if err != nil {
		t.Fatal(err)
	}
	if updated["verbose"] != true {
		t.Fatalf("unexpected valves %v", updated)
	}
}
