package tabular

import (
	"math"
	"testing"
	"time"
)

func TestCompareValues(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	cases := []struct {
		name string
		a, b any
		want int
	}{
		{"strings", "Amy", "Bob", -1},
		{"strings equal", "x", "x", 0},
		{"ints", 10, 2, 1},
		{"mixed numeric", int64(3), 3.0, 0},
		{"times", early, late, -1},
		{"bools", false, true, -1},
		{"nil vs string", nil, "a", 0},
		{"string vs number", "1", 1, 0},
		{"large int64", int64(1<<53 + 1), int64(1 << 53), 1},
		{"large uint64", uint64(math.MaxUint64), uint64(math.MaxUint64 - 1), 1},
		{"negative vs unsigned", -1, uint64(math.MaxUint64), -1},
		{"unsigned vs negative", uint8(0), int64(-5), 1},
		{"signed vs unsigned equal", int64(7), uint32(7), 0},
	}
	for _, tc := range cases {
		if got := CompareValues(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: CompareValues(%v, %v) = %d, want %d", tc.name, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSortSpecNext(t *testing.T) {
	s := SortSpec{}
	s = s.Next("a")
	if s != (SortSpec{ColumnKey: "a", Direction: DirectionAscending}) {
		t.Fatalf("first click = %+v", s)
	}
	s = s.Next("a")
	if s.Direction != DirectionDescending {
		t.Fatalf("second click = %+v", s)
	}
	s = s.Next("a")
	if s.Active() || s.ColumnKey != "" {
		t.Fatalf("third click should clear both key and direction, got %+v", s)
	}
}

func TestIsFalsy(t *testing.T) {
	for _, v := range []any{nil, "", false, 0, int64(0), 0.0, math.NaN()} {
		if !IsFalsy(v) {
			t.Fatalf("expected %v to be falsy", v)
		}
	}
	for _, v := range []any{"0", true, 1, -1, 0.1} {
		if IsFalsy(v) {
			t.Fatalf("expected %v to be truthy", v)
		}
	}
}
