package tabular

import (
	"maps"
	"slices"
)

// Record is one row of caller-owned data. Records are handled by pointer and
// compared by identity: two records holding equal values are still distinct
// rows for selection purposes.
type Record struct {
	values map[string]any
}

// NewRecord copies fields into a new record. Later changes to fields are not
// observed by the record.
func NewRecord(fields map[string]any) *Record {
	return &Record{values: maps.Clone(fields)}
}

// Records is a convenience for building a collection from plain maps.
func Records(rows ...map[string]any) []*Record {
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewRecord(row))
	}
	return out
}

func (r *Record) Get(field string) any {
	if r == nil {
		return nil
	}
	return r.values[field]
}

func (r *Record) Has(field string) bool {
	if r == nil {
		return false
	}
	_, ok := r.values[field]
	return ok
}

// Fields returns the record's field names in sorted order.
func (r *Record) Fields() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.values))
}
