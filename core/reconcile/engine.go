package reconcile

import (
	"context"
	"fmt"

	"alma-utilities/core/dataset"

	"go.uber.org/zap"
)

// Run processes every record of the dataset sequentially, in original order.
//
// For each record it consults the classifier; eligible records trigger
// exactly one Resolver call. A found MMS ID is written into the record's
// mms_id cell (no other cell is touched), a not-found or failed lookup
// leaves the record unmodified, and a per-record failure never aborts the
// run. The returned summary's counts equal the multiset of emitted outcomes:
// Updated + Skipped + NotFound + Errors == Total.
//
// Records already carrying an MMS ID are always skipped, so rerunning over
// an unchanged dataset is idempotent and never re-queries updated rows.
func Run(ctx context.Context, spec *Spec, ds *dataset.Dataset) (*Summary, error) {
	if spec == nil || spec.Resolver == nil {
		return nil, fmt.Errorf("reconcile: spec with a resolver is required")
	}

	l := spec.Logger
	if l == nil {
		l = zap.NewNop()
	}

	summary := &Summary{Total: ds.Len()}

	for i := 0; i < ds.Len(); i++ {
		rec := ds.Row(i)
		progress := Progress{Index: i}

		decision := Classify(rec)
		if !decision.Eligible {
			summary.Skipped++
			progress.Outcome = OutcomeSkipped
			emit(spec, progress)
			continue
		}

		progress.Key = decision.Key
		res := spec.Resolver.Resolve(ctx, decision.Key)

		switch res.Status {
		case StatusFound:
			rec.Set(dataset.ColumnMMSID, res.MMSID)
			summary.Updated++
			progress.Outcome = OutcomeUpdated
			l.Info("Record updated",
				zap.Int("row", i),
				zap.String("originating_system_id", decision.Key),
				zap.String("mms_id", res.MMSID),
			)
		case StatusNotFound:
			summary.NotFound++
			progress.Outcome = OutcomeNotFound
			l.Info("No match in catalog",
				zap.Int("row", i),
				zap.String("originating_system_id", decision.Key),
			)
		default:
			summary.Errors++
			summary.Failures = append(summary.Failures, Failure{
				Index:  i,
				Key:    decision.Key,
				Detail: res.Detail,
			})
			progress.Outcome = OutcomeError
			progress.Detail = res.Detail
			l.Warn("Lookup failed, continuing",
				zap.Int("row", i),
				zap.String("originating_system_id", decision.Key),
				zap.String("detail", res.Detail),
			)
		}

		emit(spec, progress)
	}

	return summary, nil
}

func emit(spec *Spec, p Progress) {
	if spec.OnProgress != nil {
		spec.OnProgress(p)
	}
}
