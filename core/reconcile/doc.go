// Package reconcile drives the per-record loop that fills empty MMS IDs
// from the Alma catalog.
//
// The engine walks a dataset sequentially, in original order, and settles
// every record into exactly one terminal state:
//
//   - Updated: the catalog returned exactly one match and the MMS ID was
//     written into the record.
//   - Skipped: no lookup was required (the record already has an MMS ID, or
//     has no originating system id). This is the only state reachable
//     without a Resolver call.
//   - NotFound: the catalog reported zero matches.
//   - Error: the lookup failed; the failure is recorded in the summary and
//     the run continues with the next record.
//
// # Architecture
//
// The package has three parts:
//
//  1. Classifier: a pure function deciding per record whether a lookup is
//     required, with whitespace-only values treated as empty.
//
//  2. Resolver: the lookup contract. Implementations (core/alma) issue one
//     outbound request per call and classify every failure into the
//     three-way Resolution instead of returning an error.
//
//  3. Engine: the sequential loop. It owns the dataset for the duration of
//     one run, mutates only the mms_id cell of updated rows, emits a
//     synchronous Progress event per record, and returns a Summary whose
//     counts always add up to the record total.
//
// Processing is strictly sequential so output is deterministic and a
// failure on one record can never affect another. Rerunning over an
// unchanged dataset is idempotent: previously updated records are skipped,
// never re-queried.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Resolver: almaClient,
//	    Logger:   logger,
//	    OnProgress: func(p reconcile.Progress) {
//	        // render row-by-row progress
//	    },
//	}
//	summary, err := reconcile.Run(ctx, spec, ds)
package reconcile
