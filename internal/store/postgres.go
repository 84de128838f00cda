package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AshwinnParthiban/server/internal/models"
)

// PostgresUserStore persists user records in PostgreSQL. Selected with
// STORE_DRIVER=postgres as an alternative to the Mongo store.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

// Migrate creates the users table if it doesn't exist.
func (s *PostgresUserStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fullname    VARCHAR(255) NOT NULL,
			email       VARCHAR(255) UNIQUE NOT NULL,
			username    VARCHAR(255) UNIQUE NOT NULL,
			password    VARCHAR(255) NOT NULL,
			profile_img TEXT,
			created_at  TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	return err
}

// CreateUser inserts the user and returns it with the store-assigned ID.
// A unique-constraint violation on any field yields ErrDuplicate.
func (s *PostgresUserStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	out := *u
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (fullname, email, username, password, profile_img)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		u.Fullname, u.Email, u.Username, u.Password, u.ProfileImg,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &out, nil
}

func (s *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx,
		`SELECT id, fullname, email, username, password, COALESCE(profile_img, ''), created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Fullname, &u.Email, &u.Username, &u.Password, &u.ProfileImg, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (s *PostgresUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("username exists: %w", err)
	}
	return exists, nil
}
