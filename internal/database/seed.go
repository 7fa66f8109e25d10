package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/jaskui/internal/database/repository"
)

// SampleUsers is the demo data set shown on first start.
var SampleUsers = []repository.User{
	{Name: "John Doe", Username: "johndoe", Email: "john@example.com", Role: "Admin", Status: repository.StatusActive},
	{Name: "Jane Smith", Username: "janesmith", Email: "jane@example.com", Role: "Editor", Status: repository.StatusActive},
	{Name: "Mike Wilson", Username: "mikewilson", Email: "mike@example.com", Role: "Viewer", Status: repository.StatusPending},
}

// UserID derives the stable id for a username.
func UserID(username string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("user:"+username)).String()
}

// SeedDefaults inserts the sample users into an empty table.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewUserRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		txRepo := repository.NewUserRepo(tx)
		for idx, u := range SampleUsers {
			u.ID = UserID(u.Username)
			u.SortOrder = idx
			if err := txRepo.Upsert(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
}
