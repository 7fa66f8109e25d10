package tabular

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Renderer turns one record into the display text of a cell. index is the
// row's position in the visible (sorted) set.
type Renderer interface {
	RenderCell(rec *Record, index int) string
}

type RendererFunc func(rec *Record, index int) string

func (f RendererFunc) RenderCell(rec *Record, index int) string { return f(rec, index) }

// ValueRenderer is the default cell strategy: the raw field value as text,
// or "" when the value is absent or falsy.
type ValueRenderer struct {
	Field string
}

func (v ValueRenderer) RenderCell(rec *Record, _ int) string {
	return DisplayText(rec.Get(v.Field))
}

type Column struct {
	Key      string
	Title    string
	Field    string
	Sortable bool
	Renderer Renderer
}

func (c Column) Cell(rec *Record, index int) string {
	if c.Renderer != nil {
		return c.Renderer.RenderCell(rec, index)
	}
	return ValueRenderer{Field: c.Field}.RenderCell(rec, index)
}

// DisplayText coerces a raw value to cell text. Falsy values (nil, false,
// numeric zero, NaN, "") become "".
func DisplayText(v any) string {
	if IsFalsy(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return "true"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func IsFalsy(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0 || math.IsNaN(x)
	case float32:
		return x == 0 || math.IsNaN(float64(x))
	}
	if f, ok := toFloat(v); ok {
		return f == 0
	}
	return false
}

func findColumn(cols []Column, key string) (Column, bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
