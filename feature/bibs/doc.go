// Package bibs exposes the reconciliation pipeline over HTTP for datasets
// hosted in the imports bucket.
//
// Institutions keep post-import CSV exports in object storage; this feature
// lets any front end trigger a run against one of them without shelling out
// to the CLI:
//
//   - GET /bibs/datasets lists the CSV objects available for processing.
//   - POST /bibs/reconcile processes one object in place and returns the
//     run summary.
//
// The processed dataset replaces the stored object with a single upload, so
// a failure partway through never leaves a half-written dataset behind.
package bibs
