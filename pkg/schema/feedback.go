package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Feedback is a user's rating of a model response, used for arena
// evaluations and the leaderboard. Data carries the rating, Meta the
// chat and message references, and Snapshot a copy of the chat at the
// time the feedback was given. User is only populated by the
// endpoints which return it.
type Feedback struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id,omitempty"`
	Version   int            `json:"version,omitempty"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
	Snapshot  map[string]any `json:"snapshot,omitempty"`
	CreatedAt int64          `json:"created_at,omitempty"`
	UpdatedAt int64          `json:"updated_at,omitempty"`
	User      *UserName      `json:"user,omitempty"`
}

// FeedbackList is a page of feedbacks with the total count.
type FeedbackList struct {
	Items []Feedback `json:"items"`
	Total int        `json:"total"`
}

// FeedbackRating is the rating payload of a feedback entry. Rating is
// 1, 0 or -1 for win, draw and lose, and SiblingModelIDs names the
// other models in an arena comparison.
type FeedbackRating struct {
	Rating          any      `json:"rating,omitempty"`
	ModelID         string   `json:"model_id,omitempty"`
	SiblingModelIDs []string `json:"sibling_model_ids,omitempty"`
	Reason          string   `json:"reason,omitempty"`
	Comment         string   `json:"comment,omitempty"`
}

// FeedbackForm creates or updates a feedback entry. Snapshot holds
// the chat under "chat".
type FeedbackForm struct {
	Type     string          `json:"type"`
	Data     *FeedbackRating `json:"data,omitempty"`
	Meta     map[string]any  `json:"meta,omitempty"`
	Snapshot map[string]any  `json:"snapshot,omitempty"`
}

// EvaluationConfig controls the arena models used for model
// evaluation. When arena models are enabled but none are configured,
// the server creates a default arena model over all available models.
type EvaluationConfig struct {
	EnableArenaModels *bool            `json:"ENABLE_EVALUATION_ARENA_MODELS,omitempty"`
	ArenaModels       []map[string]any `json:"EVALUATION_ARENA_MODELS,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f Feedback) String() string {
	return Stringify(f)
}

func (l FeedbackList) String() string {
	return Stringify(l)
}
