package history

import (
	"time"

	"github.com/google/uuid"
)

// Run is one persisted reconciliation run.
type Run struct {
	// ID is the unique run id.
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	// Source names the dataset that was processed (file path or object URL).
	Source string `json:"source"`
	// TotalRecords is the number of records in the dataset.
	TotalRecords int `json:"total_records"`
	// UpdatedCount counts records whose MMS ID was filled in.
	UpdatedCount int `json:"updated_count"`
	// SkippedCount counts records that required no lookup.
	SkippedCount int `json:"skipped_count"`
	// NotFoundCount counts records the catalog had no match for.
	NotFoundCount int `json:"not_found_count"`
	// ErrorCount counts records whose lookup failed.
	ErrorCount int `json:"error_count"`
	// StartedAt is when processing began.
	StartedAt time.Time `json:"started_at"`
	// CompletedAt is when processing finished.
	CompletedAt time.Time `json:"completed_at"`
	// CreatedAt is when the row was inserted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for GORM.
func (Run) TableName() string {
	return "reconciliation_runs"
}
