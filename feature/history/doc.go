// Package history persists a record of every reconciliation run.
//
// One row per run captures the dataset source, the outcome counts, and the
// start/completion timestamps, giving library staff an audit trail of what
// was enriched and when. Persistence is optional: without a configured
// database the Recorder degrades to a logged no-op and the HTTP routes stay
// unregistered.
//
// The feature exposes GET /history/runs when enabled.
package history
