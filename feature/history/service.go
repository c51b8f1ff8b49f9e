package history

import (
	"context"
	"fmt"
	"time"

	"alma-utilities/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder persists reconciliation runs.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a run recorder. A nil db yields a recorder whose
// Record is a logged no-op, so callers never need to branch on whether
// history is configured.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{db: db, logger: logger}
}

// Enabled reports whether runs are actually persisted.
func (r *Recorder) Enabled() bool {
	return r.db != nil
}

// Migrate creates the run-history table if needed.
func (r *Recorder) Migrate() error {
	if r.db == nil {
		return nil
	}
	return r.db.AutoMigrate(&Run{})
}

// Record persists one completed run.
func (r *Recorder) Record(ctx context.Context, source string, summary *reconcile.Summary, startedAt, completedAt time.Time) (*Run, error) {
	run := &Run{
		ID:            uuid.New(),
		Source:        source,
		TotalRecords:  summary.Total,
		UpdatedCount:  summary.Updated,
		SkippedCount:  summary.Skipped,
		NotFoundCount: summary.NotFound,
		ErrorCount:    summary.Errors,
		StartedAt:     startedAt,
		CompletedAt:   completedAt,
	}

	if r.db == nil {
		r.logger.Debug("Run history disabled, skipping persistence",
			zap.String("source", source))
		return run, nil
	}

	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	r.logger.Info("Run recorded",
		zap.String("run_id", run.ID.String()),
		zap.String("source", source),
	)
	return run, nil
}

// Recent returns the most recent runs, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Run, error) {
	if r.db == nil {
		return []Run{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	var runs []Run
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
