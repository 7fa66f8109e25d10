package app

import (
	"context"
	"database/sql"
	"slices"

	"github.com/jask/jaskui/internal/database/repository"
	"github.com/jask/jaskui/internal/fixtures"
)

// UserSource supplies the rows of the users table.
type UserSource interface {
	LoadUsers(ctx context.Context) ([]repository.User, error)
	Describe() string
}

type DBSource struct {
	DB   *sql.DB
	Path string
}

func (s DBSource) LoadUsers(ctx context.Context) ([]repository.User, error) {
	return repository.NewUserRepo(s.DB).List(ctx)
}

func (s DBSource) Describe() string { return "sqlite " + s.Path }

// FixtureSource rereads its file on every load.
type FixtureSource struct {
	Path string
}

func (s FixtureSource) LoadUsers(ctx context.Context) ([]repository.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fixtures.ReadFile(s.Path)
}

func (s FixtureSource) Describe() string { return "fixture " + s.Path }

type StaticSource []repository.User

func (s StaticSource) LoadUsers(ctx context.Context) ([]repository.User, error) {
	return slices.Clone(s), ctx.Err()
}

func (s StaticSource) Describe() string { return "built-in sample" }
