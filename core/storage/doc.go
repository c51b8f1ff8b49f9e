// Package storage provides an abstraction layer for the object storage
// holding import datasets.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the bibs feature needs: checking bucket access, fetching a
// dataset object, listing available datasets, and uploading the processed
// dataset back. The abstraction supports both AWS S3 and self-hosted MinIO
// instances and is easy to mock for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "imports")
package storage
