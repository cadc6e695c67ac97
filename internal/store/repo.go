package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // exact purpose match, empty for all
}

// LLMRequestEventData captures the data for a single provider call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored provider call.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries provider calls.
type EventRepo interface {
	// AppendLLMRequest records a provider call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns the event with the given ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates successful and failed calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls per model, for cost estimation.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Attempt is one completed quiz session.
type Attempt struct {
	ID           string
	Timestamp    time.Time
	Source       string // input text path or saved output document
	Score        int
	Total        int
	Skipped      int
	Unverifiable int
}

// AttemptRepo records completed quiz sessions.
type AttemptRepo interface {
	// RecordAttempt stores a finished session. A new ID and timestamp are
	// assigned when the attempt has none.
	RecordAttempt(ctx context.Context, a *Attempt) error

	// ListAttempts returns the most recent attempts, newest first.
	ListAttempts(ctx context.Context, limit int) ([]Attempt, error)
}
