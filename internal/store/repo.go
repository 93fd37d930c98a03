package store

import (
	"context"
	"time"
)

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
}

// KVRepo is a string key-value store. Values are opaque to the store.
type KVRepo interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// RunData captures one completed diagnosis.
type RunData struct {
	ID          string
	CompletedAt time.Time
	Rule        string
	Title       string
	MaxAmount   string
	Answers     map[string]string
}

// RunRecord is a persisted diagnosis run.
type RunRecord struct {
	RunData
	Sequence int64
}

// HistoryRepo records completed diagnoses.
type HistoryRepo interface {
	// AppendRun records a completed diagnosis.
	AppendRun(ctx context.Context, data RunData) error

	// RecentRuns returns runs newest first.
	RecentRuns(ctx context.Context, opts QueryOpts) ([]RunRecord, error)

	// RuleCounts returns the number of runs per rule and the total.
	RuleCounts(ctx context.Context) (map[string]int, int, error)

	// ClearRuns deletes every run and returns how many were removed.
	ClearRuns(ctx context.Context) (int64, error)
}

// InquiryData is a consultation request submitted through the form.
type InquiryData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// InquiryRepo stores consultation requests.
type InquiryRepo interface {
	// AppendInquiry stores a request and returns its ID.
	AppendInquiry(ctx context.Context, data InquiryData) (string, error)

	// CountInquiries returns the number of stored requests.
	CountInquiries(ctx context.Context) (int, error)
}
