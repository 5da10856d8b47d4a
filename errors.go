package footprint

import (
	"fmt"
	"strings"
)

// ValidationError reports a bad field value at entry time. The record is
// rejected before any mutation of the ledger.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SchemaError reports required columns missing from a bulk import source.
// The whole batch is rejected.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("import source must contain all required columns, missing: %s", strings.Join(e.Missing, ", "))
}

// DataTypeError reports a bulk import row that failed type coercion. The
// whole batch is rejected, never a partial merge.
type DataTypeError struct {
	Row    int // 1-based data row, not counting the header
	Column string
	Value  string
	Err    error
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("row %d: cannot coerce %s value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *DataTypeError) Unwrap() error { return e.Err }

// IndexError reports a positional deletion outside the current ledger bounds.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Length)
}
