package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskui/internal/database/repository"
)

func TestOpenAndPrepareSeedsSampleUsers(t *testing.T) {
	ctx := context.Background()
	db, err := OpenAndPrepare(ctx, MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	users, err := repository.NewUserRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "John Doe", users[0].Name)
	assert.Equal(t, "Jane Smith", users[1].Name)
	assert.Equal(t, "Mike Wilson", users[2].Name)
	assert.Equal(t, UserID("johndoe"), users[0].ID)
	assert.Equal(t, repository.StatusPending, users[2].Status)

	version, dirty, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestPrepareIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "jaskui.db")

	db, err := OpenAndPrepare(ctx, path)
	require.NoError(t, err)
	repo := repository.NewUserRepo(db)
	require.NoError(t, repo.Delete(ctx, UserID("janesmith")))
	require.NoError(t, db.Close())

	db, err = OpenAndPrepare(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	n, err := repository.NewUserRepo(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "seeding must not refill a non-empty table")
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db, err := OpenAndPrepare(ctx, MemoryPath)
	require.NoError(t, err)
	defer db.Close()

	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := repository.NewUserRepo(tx).Delete(ctx, UserID("johndoe")); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	u, err := repository.NewUserRepo(db).ByUsername(ctx, "johndoe")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "john@example.com", u.Email)
}

func TestByUsernameMissing(t *testing.T) {
	ctx := context.Background()
	db, err := OpenAndPrepare(ctx, MemoryPath)
	require.NoError(t, err)
	defer db.Close()
	u, err := repository.NewUserRepo(db).ByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)
}
