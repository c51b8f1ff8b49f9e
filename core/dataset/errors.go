package dataset

import "fmt"

// SchemaError indicates that a required column is missing from the header.
// It is fatal: the run never starts.
type SchemaError struct {
	// Column is the name of the missing required column.
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q is missing from the header", e.Column)
}

// EncodingError indicates that the source is not valid UTF-8.
// It is fatal: the run never starts.
type EncodingError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("source is not valid UTF-8 (invalid byte at offset %d)", e.Offset)
}

// WriteError indicates that the destination could not be atomically replaced.
// The original destination content is left untouched.
type WriteError struct {
	// Path is the destination path.
	Path string
	// Err is the underlying failure.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write dataset to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
