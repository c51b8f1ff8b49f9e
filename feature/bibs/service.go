package bibs

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"alma-utilities/core/dataset"
	"alma-utilities/core/reconcile"
	"alma-utilities/core/storage"
	"alma-utilities/feature/history"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DatasetInfo describes one import dataset available in the bucket.
type DatasetInfo struct {
	// Object is the object key within the imports bucket.
	Object string `json:"object"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// LastModified is the object's last modification time.
	LastModified time.Time `json:"last_modified"`
}

// RunResult is the outcome of reconciling one bucket-hosted dataset.
type RunResult struct {
	// Object is the processed object key.
	Object string `json:"object"`
	// RunID is the persisted run id ("" when history is disabled).
	RunID string `json:"run_id,omitempty"`
	// Summary aggregates the per-record outcomes.
	Summary *reconcile.Summary `json:"summary"`
}

// Service reconciles import datasets stored in the object bucket.
type Service struct {
	client   storage.Client
	bucket   string
	resolver reconcile.Resolver
	recorder *history.Recorder
	logger   *zap.Logger
}

// NewService creates a new bibs service.
func NewService(client storage.Client, bucket string, resolver reconcile.Resolver, recorder *history.Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		bucket:   bucket,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
	}
}

// ListDatasets lists the CSV objects in the imports bucket.
func (s *Service) ListDatasets(ctx context.Context) ([]DatasetInfo, error) {
	infos := []DatasetInfo{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list datasets: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".csv") {
			continue
		}
		infos = append(infos, DatasetInfo{
			Object:       obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return infos, nil
}

// ReconcileObject runs the reconciliation pipeline over one bucket-hosted
// dataset, replacing the object with the processed content on success.
//
// The object is replaced with a single PutObject, so a failure partway
// through processing or upload leaves the stored dataset untouched,
// mirroring the atomic-save rule for local files.
func (s *Service) ReconcileObject(ctx context.Context, objectName string) (*RunResult, error) {
	startedAt := time.Now()

	body, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", objectName, err)
	}
	defer body.Close()

	ds, err := dataset.Read(body)
	if err != nil {
		return nil, err
	}

	spec := &reconcile.Spec{
		Resolver: s.resolver,
		Logger:   s.logger.With(zap.String("object", objectName)),
	}

	summary, err := reconcile.Run(ctx, spec, ds)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dataset.Write(ds, &buf); err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", objectName, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", objectName, err)
	}

	result := &RunResult{Object: objectName, Summary: summary}

	source := fmt.Sprintf("s3://%s/%s", s.bucket, objectName)
	if run, err := s.recorder.Record(ctx, source, summary, startedAt, time.Now()); err != nil {
		// History is an audit trail, not part of the run contract.
		s.logger.Warn("Failed to record run", zap.Error(err))
	} else if s.recorder.Enabled() {
		result.RunID = run.ID.String()
	}

	return result, nil
}
