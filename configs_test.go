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

// newConfigTestServer mimics the configs router. Set endpoints echo
// the submitted configuration back.
func newConfigTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/configs/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"version": float64(2), "ui": map[string]any{"default_locale": "en"}})
	})

	mux.HandleFunc("/api/v1/configs/import", func(w http.ResponseWriter, r *http.Request) {
		var form struct {
			Config map[string]any `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Config == nil {
			http.Error(w, "missing config", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(form.Config)
	})

	mux.HandleFunc("/api/v1/configs/connections", func(w http.ResponseWriter, r *http.Request) {
		config := schema.ConnectionsConfig{EnableDirectConnections: true, EnableBaseModelsCache: true}
		if r.Method == http.MethodPost {
			if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})

	mux.HandleFunc("/api/v1/configs/oauth/clients/register", func(w http.ResponseWriter, r *http.Request) {
		var form schema.OAuthClientRegistrationForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.URL == "" {
			http.Error(w, "missing url", http.StatusBadRequest)
			return
		}
		clientId := form.ClientID
		if prefix := r.URL.Query().Get("type"); prefix != "" {
			clientId = prefix + ":" + clientId
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": true, "client_id": clientId, "oauth_client_info": "encrypted"})
	})

	mux.HandleFunc("/api/v1/configs/tool_servers", func(w http.ResponseWriter, r *http.Request) {
		config := schema.ToolServersConfig{
			ToolServerConnections: []schema.ToolServerConnection{
				{URL: "http://tools.local", Path: "openapi.json", Type: "openapi"},
			},
		}
		if r.Method == http.MethodPost {
			if err := json.NewDecoder(r.Body).Decode(&config); err != nil || config.ToolServerConnections == nil {
				http.Error(w, "connections list is required", http.StatusBadRequest)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})

	mux.HandleFunc("/api/v1/configs/tool_servers/verify", func(w http.ResponseWriter, r *http.Request) {
		var conn schema.ToolServerConnection
		if err := json.NewDecoder(r.Body).Decode(&conn); err != nil || conn.URL == "" {
			http.Error(w, "missing url", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": true, "specs": []any{}})
	})

	mux.HandleFunc("/api/v1/configs/code_execution", func(w http.ResponseWriter, r *http.Request) {
		config := schema.CodeExecutionConfig{
			EnableCodeExecution:   true,
			CodeExecutionEngine:   "pyodide",
			EnableCodeInterpreter: true,
			CodeInterpreterEngine: "pyodide",
		}
		if r.Method == http.MethodPost {
			if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})

	mux.HandleFunc("/api/v1/configs/models", func(w http.ResponseWriter, r *http.Request) {
		config := schema.ModelsConfig{DefaultModels: "llama3:latest"}
		if r.Method == http.MethodPost {
			if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(config)
	})

	mux.HandleFunc("/api/v1/configs/suggestions", func(w http.ResponseWriter, r *http.Request) {
		var form struct {
			Suggestions []schema.PromptSuggestion `json:"suggestions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Suggestions == nil {
			http.Error(w, "suggestions list is required", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(form.Suggestions)
	})

	mux.HandleFunc("/api/v1/configs/banners", func(w http.ResponseWriter, r *http.Request) {
		banners := []schema.Banner{
			{ID: "banner-1", Type: "info", Content: "Maintenance at 18:00", Dismissible: true, Timestamp: 1700000000},
		}
		if r.Method == http.MethodPost {
			var form struct {
				Banners []schema.Banner `json:"banners"`
			}
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Banners == nil {
				http.Error(w, "banners list is required", http.StatusBadRequest)
				return
			}
			banners = form.Banners
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(banners)
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestConfigImportExport(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	config, err := client.ExportConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if config["version"] != float64(2) {
		t.Fatalf("unexpected config %v", config)
	}

	imported, err := client.ImportConfig(context.Background(), map[string]any{"version": float64(3)})
	if err != nil {
		t.Fatal(err)
	}
	if imported["version"] != float64(3) {
		t.Fatalf("unexpected config %v", imported)
	}

	if _, err := client.ImportConfig(context.Background(), nil); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestConnectionsConfig(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	config, err := client.GetConnectionsConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !config.EnableDirectConnections {
		t.Fatalf("unexpected config %v", config)
	}

	config, err = client.SetConnectionsConfig(context.Background(), schema.ConnectionsConfig{EnableBaseModelsCache: true})
	if err != nil {
		t.Fatal(err)
	}
	if config.EnableDirectConnections || !config.EnableBaseModelsCache {
		t.Fatalf("unexpected config %v", config)
	}
}

func TestRegisterOAuthClient(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	response, err := client.RegisterOAuthClient(context.Background(), schema.OAuthClientRegistrationForm{
		URL:      "http://tools.local",
		ClientID: "owui",
	}, openwebui.WithType("mcp"))
	if err != nil {
		t.Fatal(err)
	}
	if response["client_id"] != "mcp:owui" {
		t.Fatalf("unexpected response %v", response)
	}

	if _, err := client.RegisterOAuthClient(context.Background(), schema.OAuthClientRegistrationForm{ClientID: "owui"}); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestToolServersConfig(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	config, err := client.GetToolServersConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(config.ToolServerConnections) != 1 || config.ToolServerConnections[0].Type != "openapi" {
		t.Fatalf("unexpected config %v", config)
	}

	// Clearing the connections sends an empty array rather than null
	config, err = client.SetToolServersConfig(context.Background(), schema.ToolServersConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if len(config.ToolServerConnections) != 0 {
		t.Fatalf("expected no connections, got %v", config)
	}

	verified, err := client.VerifyToolServer(context.Background(), schema.ToolServerConnection{
		URL:  "http://tools.local",
		Path: "openapi.json",
	})
	if err != nil {
		t.Fatal(err)
	}
	if verified["status"] != true {
		t.Fatalf("unexpected response %v", verified)
	}
}

func TestCodeExecutionConfig(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	config, err := client.GetCodeExecutionConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if config.CodeExecutionEngine != "pyodide" {
		t.Fatalf("unexpected config %v", config)
	}

	config.CodeExecutionEngine = "jupyter"
	config.CodeExecutionJupyterURL = "http://jupyter.local:8888"
	config, err = client.SetCodeExecutionConfig(context.Background(), *config)
	if err != nil {
		t.Fatal(err)
	}
	if config.CodeExecutionEngine != "jupyter" || config.CodeExecutionJupyterURL == "" {
		t.Fatalf("unexpected config %v", config)
	}
}

func TestModelsConfig(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	config, err := client.GetModelsConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if config.DefaultModels != "llama3:latest" {
		t.Fatalf("unexpected config %v", config)
	}

	config, err = client.SetModelsConfig(context.Background(), schema.ModelsConfig{
		DefaultModels:  "mistral:latest",
		ModelOrderList: []string{"mistral:latest", "llama3:latest"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(config.ModelOrderList) != 2 {
		t.Fatalf("unexpected config %v", config)
	}
}

func TestDefaultSuggestions(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	suggestions, err := client.SetDefaultSuggestions(context.Background(), []schema.PromptSuggestion{
		{Title: []string{"Tell me a fun fact", "about the Roman Empire"}, Content: "Tell me a fun fact about the Roman Empire"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 1 || len(suggestions[0].Title) != 2 {
		t.Fatalf("unexpected suggestions %v", suggestions)
	}

	// Clearing the suggestions sends an empty array rather than null
	suggestions, err = client.SetDefaultSuggestions(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
}

func TestBanners(t *testing.T) {
	srv := newConfigTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	banners, err := client.GetBanners(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(banners) != 1 || banners[0].Type != "info" {
		t.Fatalf("unexpected banners %v", banners)
	}

	banners, err = client.SetBanners(context.Background(), []schema.Banner{
		{ID: "banner-2", Type: "warning", Content: "Upgrade scheduled", Dismissible: false, Timestamp: 1700000001},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(banners) != 1 || banners[0].Type != "warning" {
		t.Fatalf("unexpected banners %v", banners)
	}
}
