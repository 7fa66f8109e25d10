package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskui/internal/database"
	"github.com/jask/jaskui/internal/database/repository"
)

func usernames(users []repository.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}

func TestReadYAML(t *testing.T) {
	users, err := ReadFile(filepath.Join("testdata", "users.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"ada", "grace", "alan"}, usernames(users)); diff != "" {
		t.Fatalf("usernames mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, repository.StatusPending, users[1].Status)
	assert.Equal(t, repository.StatusInactive, users[2].Status)
	assert.Equal(t, database.UserID("ada"), users[0].ID)
	assert.Equal(t, 2, users[2].SortOrder)
}

func TestReadJSONCAcceptsCommentsAndTrailingCommas(t *testing.T) {
	users, err := ReadFile(filepath.Join("testdata", "users.jsonc"))
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"alan", "ada", "grace"}, usernames(users)); diff != "" {
		t.Fatalf("usernames mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, repository.StatusPending, users[2].Status)
}

func TestRejectsBadInput(t *testing.T) {
	_, err := ParseYAML([]byte("users:\n  - name: Nobody\n"))
	require.ErrorContains(t, err, "username is required")

	_, err = ParseJSONC([]byte(`{"users":[{"username":"x","status":"gone"}]}`))
	require.ErrorContains(t, err, `unknown status "gone"`)

	path := filepath.Join(t.TempDir(), "users.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))
	_, err = ReadFile(path)
	require.ErrorContains(t, err, "unsupported fixture extension")
}
