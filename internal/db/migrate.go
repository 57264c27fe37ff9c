package db

import (
	"context"
	"database/sql"
)

// DB wraps the sql pool so stores depend on our type, not database/sql.
type DB struct {
	*sql.DB
}

const usersMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    google_id text NOT NULL,
    email text NOT NULL,
    name text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT users_google_id_unique UNIQUE (google_id)
);
`

// RunMigration creates the users table. Idempotent, runs at every startup.
// The unique constraint on google_id is what makes concurrent
// find-or-create safe.
func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, usersMigration)
	return err
}
