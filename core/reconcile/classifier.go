package reconcile

import (
	"strings"

	"alma-utilities/core/dataset"
)

// Decision is the classifier's verdict for a single record.
type Decision struct {
	// Eligible is true when a lookup is required for the record.
	Eligible bool
	// Key is the trimmed originating system id. Set only when Eligible.
	Key string
}

// Classify decides whether a record requires a catalog lookup.
//
// A record is eligible iff its originating_system_id is non-empty and its
// mms_id is empty, both after trimming whitespace. A value consisting only
// of whitespace counts as empty. Classify performs no I/O and is
// deterministic given a record.
func Classify(rec dataset.Record) Decision {
	key := strings.TrimSpace(rec.Get(dataset.ColumnOriginatingSystemID))
	mmsID := strings.TrimSpace(rec.Get(dataset.ColumnMMSID))

	if key == "" || mmsID != "" {
		return Decision{}
	}
	return Decision{Eligible: true, Key: key}
}
