// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/algotrack/algotrack-backend/internal/adapter/postgres"
	"github.com/algotrack/algotrack-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, role, created_at, updated_at`

const getUserByIDSQL = `
SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getUserByEmailSQL = `
SELECT ` + userColumns + ` FROM users WHERE email = $1`

const insertUserSQL = `
INSERT INTO users (id, email, username, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + userColumns

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getUserByIDSQL, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getUserByEmailSQL, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Duplicate email or username results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, insertUserSQL,
		id, u.Email, u.Username, u.PasswordHash, string(u.Role), now,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return created, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &role,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
