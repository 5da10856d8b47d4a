package footprint

import (
	"iter"
	"slices"
)

// Ledger owns the ordered collection of emission records. Insertion order
// is significant: positional deletion and append semantics are defined
// against it.
type Ledger struct {
	records []Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make([]Record, 0)}
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Append adds one record at the end of the ledger.
func (l *Ledger) Append(r Record) {
	l.records = append(l.records, r)
}

// MergeAll appends a batch of records in one step. Validation happens
// before the merge; once called, the whole batch enters the ledger.
func (l *Ledger) MergeAll(rs []Record) {
	l.records = append(l.records, rs...)
}

// DeleteAt removes the record at the given position and shifts subsequent
// records down by one, leaving no gaps. An index outside [0, Len) returns
// an IndexError and leaves the ledger unchanged.
func (l *Ledger) DeleteAt(i int) error {
	if i < 0 || i >= len(l.records) {
		return &IndexError{Index: i, Length: len(l.records)}
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return nil
}

// At returns the record at the given position.
func (l *Ledger) At(i int) (Record, error) {
	if i < 0 || i >= len(l.records) {
		return Record{}, &IndexError{Index: i, Length: len(l.records)}
	}
	return l.records[i], nil
}

// Snapshot is an immutable point-in-time copy of the ledger for read-only
// aggregation. It shares no backing storage with the ledger it was taken
// from.
type Snapshot []Record

// Snapshot returns an independent copy of the current ledger state.
// Mutations that happen after the snapshot is taken never show through.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot(slices.Clone(l.records))
}

// Records returns an iterator that yields each record with its current
// position, in insertion order.
func (l *Ledger) Records() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			if !yield(i, r) {
				return
			}
		}
	}
}
