package report

import (
	"errors"
	"time"
)

// ErrNotFound indicates a report could not be located for the requesting user.
var ErrNotFound = errors.New("report not found")

// Status identifies the lifecycle state of a report file.
type Status string

const (
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Report tracks a user-owned report document stored in object storage.
// StorageKey is the object key; clients upload and download through
// presigned URLs, never through this API directly.
type Report struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	StorageKey string    `json:"storageKey"`
	AISummary  string    `json:"aiSummary,omitempty"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
