package tabular

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

type Direction int

const (
	DirectionNone Direction = iota
	DirectionAscending
	DirectionDescending
)

func (d Direction) String() string {
	switch d {
	case DirectionAscending:
		return "asc"
	case DirectionDescending:
		return "desc"
	default:
		return "none"
	}
}

// SortSpec is the single active sort. Direction is DirectionNone exactly when
// ColumnKey is empty.
type SortSpec struct {
	ColumnKey string
	Direction Direction
}

func (s SortSpec) Active() bool {
	return s.ColumnKey != "" && s.Direction != DirectionNone
}

// Next returns the spec after a header click on key: asc -> desc -> none on
// the same column, asc on any other column.
func (s SortSpec) Next(key string) SortSpec {
	if s.ColumnKey != key {
		return SortSpec{ColumnKey: key, Direction: DirectionAscending}
	}
	switch s.Direction {
	case DirectionAscending:
		return SortSpec{ColumnKey: key, Direction: DirectionDescending}
	case DirectionDescending:
		return SortSpec{}
	default:
		return SortSpec{ColumnKey: key, Direction: DirectionAscending}
	}
}

// DirectionFor reports the direction shown on the header of key.
func (s SortSpec) DirectionFor(key string) Direction {
	if s.ColumnKey != key {
		return DirectionNone
	}
	return s.Direction
}

// sortRecords returns records ordered by spec. The input slice is never
// reordered; with no active sort it is returned as-is.
func sortRecords(records []*Record, cols []Column, spec SortSpec) []*Record {
	if !spec.Active() {
		return records
	}
	col, ok := findColumn(cols, spec.ColumnKey)
	if !ok {
		return records
	}
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b *Record) int {
		c := CompareValues(a.Get(col.Field), b.Get(col.Field))
		if spec.Direction == DirectionDescending {
			return -c
		}
		return c
	})
	return out
}

// CompareValues is a three-way ordering over raw field values. Numbers compare
// numerically, strings lexically, times chronologically and bools with false
// first. Anything else, including absent values and mixed kinds, compares
// equal so a stable sort keeps its input order.
func CompareValues(a, b any) int {
	if c, ok := compareIntegers(a, b); ok {
		return c
	}
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
		return 0
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}

// compareIntegers orders two integer values exactly. Converting to float64
// would merge distinct values above 2^53.
func compareIntegers(a, b any) (int, bool) {
	ai, aSigned, ok := toInteger(a)
	if !ok {
		return 0, false
	}
	bi, bSigned, ok := toInteger(b)
	if !ok {
		return 0, false
	}
	switch {
	case aSigned && bSigned:
		return cmp.Compare(int64(ai), int64(bi)), true
	case !aSigned && !bSigned:
		return cmp.Compare(ai, bi), true
	case aSigned:
		if int64(ai) < 0 {
			return -1, true
		}
		return cmp.Compare(ai, bi), true
	default:
		if int64(bi) < 0 {
			return 1, true
		}
		return cmp.Compare(ai, bi), true
	}
}

// toInteger returns the bits of an integer value and whether its kind is
// signed. Signed values round-trip through int64(bits).
func toInteger(v any) (bits uint64, signed bool, ok bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), true, true
	case int8:
		return uint64(x), true, true
	case int16:
		return uint64(x), true, true
	case int32:
		return uint64(x), true, true
	case int64:
		return uint64(x), true, true
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	default:
		return 0, false, false
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
