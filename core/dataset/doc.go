// Package dataset provides loading and saving of the delimited import files
// that runs operate on.
//
// A Dataset is an ordered sequence of rows sharing one fixed column set,
// established from the header row on load. Unknown columns are preserved
// verbatim in their original position; only the mms_id cell of a row is ever
// rewritten, and only by the reconciliation engine.
//
// # Required Schema
//
// Every source must carry the originating_system_id and mms_id columns
// (exact match, case-sensitive). A missing column fails with *SchemaError
// before any row is read. Sources must be valid UTF-8; anything else fails
// with *EncodingError.
//
// # Atomic Saves
//
// Save writes through a temporary file in the destination directory and
// renames it into place, so a failure partway through leaves the original
// file byte-for-byte unchanged. Overwriting the source in place is the
// default and expected mode.
//
// # Usage
//
//	ds, err := dataset.Load("import.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... mutate rows ...
//	err = dataset.Save(ds, "import.csv")
package dataset
