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
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// newEvaluationTestServer mimics the evaluations router for a single
// known feedback entry.
func newEvaluationTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	feedback := schema.Feedback{
		ID:      "feedback-1",
		UserID:  "user-1",
		Version: 0,
		Type:    "rating",
		Data: map[string]any{
			"rating":   float64(1),
			"model_id": "llama3:latest",
			"reason":   "accurate_information",
		},
		Meta:      map[string]any{"chat_id": "chat-1", "message_id": "msg-1"},
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}

	mux.HandleFunc("/api/v1/evaluations/config", func(w http.ResponseWriter, r *http.Request) {
		config := schema.EvaluationConfig{
			EnableArenaModels: types.Ptr(true),
			ArenaModels:       []map[string]any{{"id": "arena-model", "name": "Arena Model"}},
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

	mux.HandleFunc("/api/v1/evaluations/feedbacks/all", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(true)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Feedback{feedback})
	})

	mux.HandleFunc("/api/v1/evaluations/feedbacks/all/export", func(w http.ResponseWriter, r *http.Request) {
		exported := feedback
		exported.Snapshot = map[string]any{"chat": map[string]any{"id": "chat-1"}}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Feedback{exported})
	})

	mux.HandleFunc("/api/v1/evaluations/feedbacks/user", func(w http.ResponseWriter, r *http.Request) {
		withUser := feedback
		withUser.User = &schema.UserName{ID: "user-1", Name: "Alice"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]schema.Feedback{withUser})
	})

	mux.HandleFunc("/api/v1/evaluations/feedbacks", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(true)
	})

	mux.HandleFunc("/api/v1/evaluations/feedbacks/list", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "" {
			http.Error(w, "missing page", http.StatusBadRequest)
			return
		}
		withUser := feedback
		withUser.User = &schema.UserName{ID: "user-1", Name: "Alice"}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(schema.FeedbackList{Items: []schema.Feedback{withUser}, Total: 1})
	})

	mux.HandleFunc("/api/v1/evaluations/feedback", func(w http.ResponseWriter, r *http.Request) {
		var form schema.FeedbackForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Type == "" {
			http.Error(w, "missing type", http.StatusBadRequest)
			return
		}
		created := feedback
		created.ID = "feedback-2"
		created.Type = form.Type
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(created)
	})

	mux.HandleFunc("/api/v1/evaluations/feedback/feedback-1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(true)
		case http.MethodPost:
			var form schema.FeedbackForm
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			updated := feedback
			if form.Data != nil {
				updated.Data = map[string]any{"rating": form.Data.Rating, "comment": form.Data.Comment}
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(updated)
		default:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(feedback)
		}
	})

	return httptest.NewServer(mux)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestEvaluationConfig(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	config, err := client.GetEvaluationConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !types.Value(config.EnableArenaModels) || len(config.ArenaModels) != 1 {
		t.Fatalf("unexpected config %v", config)
	}

	config, err = client.UpdateEvaluationConfig(context.Background(), schema.EvaluationConfig{
		EnableArenaModels: types.Ptr(false),
	})
	if err != nil {
		t.Fatal(err)
	}
	if types.Value(config.EnableArenaModels) {
		t.Fatalf("unexpected config %v", config)
	}
}

func TestListFeedbacks(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	feedbacks, err := client.ListFeedbacks(context.Background(), openwebui.WithOrderBy("created_at"), openwebui.WithDirection("desc"))
	if err != nil {
		t.Fatal(err)
	}
	if feedbacks.Total != 1 || feedbacks.Items[0].User == nil {
		t.Fatalf("unexpected feedbacks %v", feedbacks)
	}

	all, err := client.ListAllFeedbacks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Type != "rating" {
		t.Fatalf("unexpected feedbacks %v", all)
	}

	mine, err := client.ListUserFeedbacks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected one feedback, got %d", len(mine))
	}
}

func TestExportAllFeedbacks(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	feedbacks, err := client.ExportAllFeedbacks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(feedbacks) != 1 || feedbacks[0].Snapshot == nil {
		t.Fatalf("expected snapshots in export, got %v", feedbacks)
	}
}

func TestCreateFeedback(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	feedback, err := client.CreateFeedback(context.Background(), schema.FeedbackForm{
		Type: "rating",
		Data: &schema.FeedbackRating{Rating: 1, ModelID: "llama3:latest"},
		Meta: map[string]any{"chat_id": "chat-1", "message_id": "msg-1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if feedback.ID != "feedback-2" {
		t.Fatalf("unexpected feedback %v", feedback)
	}

	if _, err := client.CreateFeedback(context.Background(), schema.FeedbackForm{}); !errors.Is(err, openwebui.ErrBadParameter) {
		t.Fatalf("expected bad parameter error, got %v", err)
	}
}

func TestGetFeedback(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	feedback, err := client.GetFeedback(context.Background(), "feedback-1")
	if err != nil {
		t.Fatal(err)
	}
	if feedback.Data["model_id"] != "llama3:latest" {
		t.Fatalf("unexpected feedback %v", feedback)
	}

	if _, err := client.GetFeedback(context.Background(), "missing"); !errors.Is(err, openwebui.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateFeedback(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	feedback, err := client.UpdateFeedback(context.Background(), "feedback-1", schema.FeedbackForm{
		Type: "rating",
		Data: &schema.FeedbackRating{Rating: -1, Comment: "Outdated answer"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if feedback.Data["comment"] != "Outdated answer" {
		t.Fatalf("unexpected feedback %v", feedback)
	}
}

func TestDeleteFeedback(t *testing.T) {
	srv := newEvaluationTestServer(t)
	defer srv.Close()
	client := newClient(t, srv.URL)

	deleted, err := client.DeleteFeedback(context.Background(), "feedback-1")
	if err != nil {
		t.Fatal(err)
	}
	if !deleted {
		t.Fatal("expected feedback to be deleted")
	}

	all, err := client.DeleteAllFeedbacks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !all {
		t.Fatal("expected feedbacks to be deleted")
	}

	mine, err := client.DeleteUserFeedbacks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !mine {
		t.Fatal("expected user feedbacks to be deleted")
	}
}
