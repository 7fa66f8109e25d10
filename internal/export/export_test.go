package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskui/core/tabular"
)

func usersView() *tabular.View {
	return tabular.New(tabular.Props{
		Records: tabular.Records(
			map[string]any{"name": "John Doe", "email": "john@example.com", "role": "Admin"},
			map[string]any{"name": "Jane Smith", "email": "jane@example.com", "role": "Editor"},
			map[string]any{"name": "Doe, Mike", "email": "mike@example.com", "role": "Viewer"},
		),
		Columns: []tabular.Column{
			{Key: "name", Title: "Name", Field: "name", Sortable: true},
			{Key: "email", Title: "Email", Field: "email", Sortable: true},
			{Key: "role", Title: "Role", Field: "role"},
			{Key: "actions", Title: "Actions", Renderer: tabular.RendererFunc(func(*tabular.Record, int) string { return "edit" })},
		},
	})
}

func TestCSVFollowsVisibleOrder(t *testing.T) {
	v := usersView()
	require.True(t, v.ClickHeader("name"))
	require.True(t, v.ClickHeader("name"))

	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, FormatCSV, Snapshot("Users", v)))
	assert.Equal(t, ""+
		"Name,Email,Role\n"+
		"John Doe,john@example.com,Admin\n"+
		"Jane Smith,jane@example.com,Editor\n"+
		`"Doe, Mike",mike@example.com,Viewer`+"\n",
		buf.String())
}

func TestHTMLEscapesAndCaptions(t *testing.T) {
	v := tabular.New(tabular.Props{
		Records: tabular.Records(map[string]any{"name": "<b>bold</b>"}),
		Columns: []tabular.Column{{Key: "name", Title: "Name", Field: "name"}},
	})
	var buf bytes.Buffer
	require.NoError(t, Write(context.Background(), &buf, FormatHTML, Snapshot("Users", v)))
	out := buf.String()
	assert.Contains(t, out, "<caption>Users</caption>")
	assert.Contains(t, out, "<th>Name</th>")
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestSnapshotIsEmptyWhileLoading(t *testing.T) {
	v := usersView()
	props := v.Props()
	props.Loading = true
	v.SetProps(props)
	assert.Zero(t, Snapshot("Users", v).NumRows())
}

func TestToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := ToFile(context.Background(), dir, "users", FormatCSV, Snapshot("Users", usersView()))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "users.csv"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "John Doe")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not linger")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" HTML ")
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, f)
	_, err = ParseFormat("xlsx")
	require.Error(t, err)
}
