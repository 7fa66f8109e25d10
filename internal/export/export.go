// Package export writes the visible rows of a table to CSV or HTML.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/domonda/go-retable"
	"github.com/domonda/go-retable/csvtable"
	"github.com/domonda/go-retable/htmltable"

	"github.com/jask/jaskui/core/tabular"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatHTML Format = "html"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Snapshot captures the visible rows of v in display order. Only columns
// bound to a record field are exported; the cells hold raw field text rather
// than rendered output.
func Snapshot(title string, v *tabular.View) *retable.StringsView {
	cols := slices.DeleteFunc(slices.Clone(v.Columns()), func(c tabular.Column) bool { return c.Field == "" })
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Title)
	}
	var rows [][]string
	if v.Mode() == tabular.ModePopulated {
		for _, rec := range v.Visible() {
			row := make([]string, 0, len(cols))
			for _, c := range cols {
				row = append(row, tabular.DisplayText(rec.Get(c.Field)))
			}
			rows = append(rows, row)
		}
	}
	return retable.NewStringsView(title, rows, names...)
}

// Write renders view in format f to dest.
func Write(ctx context.Context, dest io.Writer, f Format, view retable.View) error {
	switch f {
	case FormatCSV:
		return csvtable.NewWriter[*retable.StringsView]().
			WithHeaderRow(true).
			WithDelimiter(',').
			WithNewLine("\n").
			WriteView(ctx, dest, view)
	case FormatHTML:
		return htmltable.NewWriter[*retable.StringsView]().
			WithHeaderRow(true).
			WithTableClass("jaskui").
			WriteView(ctx, dest, view)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// ToFile writes view into dir as <name>.<format> and returns the path.
// The file only appears once fully written.
func ToFile(ctx context.Context, dir, name string, f Format, view retable.View) (string, error) {
	var buf bytes.Buffer
	if err := Write(ctx, &buf, f, view); err != nil {
		return "", fmt.Errorf("export %s: %w", f, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, name+"."+string(f))
	tmp, err := os.CreateTemp(dir, "."+name+"-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}
