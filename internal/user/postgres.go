package user

import (
	"context"
	"database/sql"
	"errors"

	"movieswipe-auth/internal/db"

	"github.com/google/uuid"
)

// PostgresStore is the canonical user store. Uniqueness per google_id is
// enforced by the users_google_id_unique constraint, not by application
// locking.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByGoogleID(
	ctx context.Context,
	googleID string,
) (*User, error) {

	if googleID == "" {
		return nil, errors.New("user: google id is required")
	}

	var (
		id uuid.UUID
		u  User
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, google_id, email, name, created_at, updated_at
		FROM users
		WHERE google_id = $1
	`, googleID).Scan(
		&id,
		&u.GoogleID,
		&u.Email,
		&u.Name,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.ID = id.String()
	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, n NewUser) (*User, error) {
	if n.GoogleID == "" {
		return nil, errors.New("user: google id is required")
	}

	var (
		id uuid.UUID
		u  = User{
			GoogleID: n.GoogleID,
			Email:    n.Email,
			Name:     n.Name,
		}
	)

	// DO NOTHING on conflict: the losing writer in a concurrent sign-in
	// gets no row back and falls through to re-reading the winner's row.
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (google_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (google_id) DO NOTHING
		RETURNING id, created_at, updated_at
	`,
		n.GoogleID,
		n.Email,
		n.Name,
	).Scan(&id, &u.CreatedAt, &u.UpdatedAt)

	if err == sql.ErrNoRows {
		return s.FindByGoogleID(ctx, n.GoogleID)
	}
	if err != nil {
		return nil, err
	}

	u.ID = id.String()
	return &u, nil
}
