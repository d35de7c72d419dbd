package model

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningTask struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID        int64     `json:"job_id"`
	UserID       int64     `json:"user_id"`
	Status       string    `gorm:"type:varchar(50)" json:"status"` // e.g. "processing", "completed", "failed"
	FileCount    int       `json:"file_count"`
	CreatedCount int       `json:"created_count"`
	SkippedCount int       `json:"skipped_count"`
	FailedCount  int       `json:"failed_count"`
	Result       string    `gorm:"type:jsonb" json:"result"`
	Error        string    `gorm:"type:text" json:"error"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
