package reconcile

import (
	"context"

	"go.uber.org/zap"
)

// Outcome is the terminal state of a single record within a run.
type Outcome string

const (
	// OutcomeUpdated means the lookup found exactly one match and the MMS ID
	// was written into the record.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means no lookup was performed: the record either already
	// carries an MMS ID or has no originating system id.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeNotFound means the catalog reported zero matches; the record is
	// left unmodified.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeError means the lookup failed (timeout, transport, malformed or
	// ambiguous response); the record is left unmodified and the run continues.
	OutcomeError Outcome = "error"
)

// Status is the three-way result of a single catalog lookup.
type Status string

const (
	// StatusFound means exactly one matching record was returned.
	StatusFound Status = "found"
	// StatusNotFound means the catalog reported zero matches.
	StatusNotFound Status = "not_found"
	// StatusError covers timeouts, transport failures, and malformed or
	// ambiguous responses.
	StatusError Status = "error"
)

// Resolution is the result of resolving one originating system id against
// the catalog. Resolvers never surface anything beyond these three states.
type Resolution struct {
	// Status is the lookup result category.
	Status Status
	// MMSID is the canonical identifier. Set only when Status is StatusFound.
	MMSID string
	// Detail describes the failure. Set only when Status is StatusError.
	Detail string
}

// Resolver resolves an originating system id to an Alma MMS ID.
// Implementations must issue exactly one outbound request per call and
// classify every failure into the Resolution, never returning it as an error.
type Resolver interface {
	Resolve(ctx context.Context, originatingSystemID string) Resolution
}

// Progress describes one completed record. It is delivered synchronously as
// each record finishes, so a caller can render progress without polling.
type Progress struct {
	// Index is the zero-based row index within the dataset.
	Index int
	// Key is the originating system id of the record ("" for skipped rows
	// without one).
	Key string
	// Outcome is the terminal state of the record.
	Outcome Outcome
	// Detail carries the failure description for OutcomeError.
	Detail string
}

// Spec bundles the collaborators for one run.
type Spec struct {
	// Resolver performs the per-record catalog lookups.
	Resolver Resolver
	// Logger receives per-record and summary logging. Optional; defaults to
	// a no-op logger.
	Logger *zap.Logger
	// OnProgress, when set, is invoked synchronously after each record.
	OnProgress func(Progress)
}

// Failure records a per-record lookup failure for the summary.
type Failure struct {
	// Index is the zero-based row index.
	Index int `json:"index"`
	// Key is the originating system id that was looked up.
	Key string `json:"key"`
	// Detail describes the failure.
	Detail string `json:"detail"`
}

// Summary aggregates the outcomes of one run. It is created fresh per run
// and never mutated after being returned.
type Summary struct {
	// Total is the number of records processed.
	Total int `json:"total"`
	// Updated counts records whose MMS ID was filled in.
	Updated int `json:"updated"`
	// Skipped counts records that required no lookup.
	Skipped int `json:"skipped"`
	// NotFound counts records the catalog had no match for.
	NotFound int `json:"not_found"`
	// Errors counts records whose lookup failed.
	Errors int `json:"errors"`
	// Failures lists the per-record failure details behind Errors.
	Failures []Failure `json:"failures,omitempty"`
}
