package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ScreeningTaskDTO struct {
	ID           uuid.UUID       `json:"id"`
	JobID        int64           `json:"job_id"`
	UserID       int64           `json:"user_id"`
	Status       string          `json:"status"` // e.g. "processing", "completed", "failed"
	Progress     int             `json:"progress"`
	FileCount    int             `json:"file_count"`
	CreatedCount int             `json:"created_count"`
	SkippedCount int             `json:"skipped_count"`
	FailedCount  int             `json:"failed_count"`
	Result       json.RawMessage `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
