package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskui/app"
	"github.com/jask/jaskui/internal/config"
)

func TestOpenSourcePrefersRecordsFile(t *testing.T) {
	cfg := config.Config{}
	cfg.Records.File = "users.yaml"
	cfg.Database.Path = filepath.Join(t.TempDir(), "unused.db")

	src, closeFn, err := openSource(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, app.FixtureSource{Path: "users.yaml"}, src)
}

func TestOpenSourceSeedsDatabase(t *testing.T) {
	cfg := config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "jaskui.db")

	src, closeFn, err := openSource(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	users, err := src.LoadUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, "sqlite "+cfg.Database.Path, src.Describe())
}

func TestWriteSnapshotEndsWithNewline(t *testing.T) {
	var b strings.Builder
	require.NoError(t, writeSnapshot(&b, "frame"))
	assert.Equal(t, "frame\n", b.String())
}
