package database

import (
	"context"
	"fmt"
)

// One table per stored collection. movie_name is deliberately not unique:
// the same film can run in several theatres, and duplicate seed rows are
// resolved by (created_at, id) ordering.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id         UUID PRIMARY KEY,
		name       VARCHAR(20) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id             UUID PRIMARY KEY,
		username       VARCHAR(20) NOT NULL UNIQUE,
		first_name     VARCHAR(100) NOT NULL,
		last_name      VARCHAR(100) NOT NULL,
		email          VARCHAR(50) NOT NULL UNIQUE,
		contact_number VARCHAR(20) NOT NULL,
		password       VARCHAR(255) NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id                UUID PRIMARY KEY,
		slug              VARCHAR(255) NOT NULL,
		movie_name        VARCHAR(255) NOT NULL,
		theatre_name      VARCHAR(255) NOT NULL,
		review_count      INT NOT NULL DEFAULT 0,
		status            VARCHAR(50) NOT NULL DEFAULT '',
		poster_url        TEXT NOT NULL DEFAULT '',
		description       TEXT NOT NULL DEFAULT '',
		director          VARCHAR(255) NOT NULL DEFAULT '',
		movie_cast        TEXT[] NOT NULL DEFAULT '{}',
		genre             VARCHAR(255) NOT NULL DEFAULT '',
		language          VARCHAR(50) NOT NULL DEFAULT '',
		duration          INT NOT NULL DEFAULT 0,
		rating            DOUBLE PRECISION NOT NULL DEFAULT 0,
		release_date      DATE,
		certificate       VARCHAR(20) NOT NULL DEFAULT '',
		trailer_url       TEXT NOT NULL DEFAULT '',
		bookmyshow_url    TEXT NOT NULL DEFAULT '',
		tickets_available INT NOT NULL DEFAULT 0 CHECK (tickets_available >= 0),
		ticket_status     VARCHAR(20) NOT NULL DEFAULT 'BOOK ASAP',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_name_theatre ON movies (movie_name, theatre_name)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id            UUID PRIMARY KEY,
		username      VARCHAR(20) NOT NULL,
		movie_name    VARCHAR(255) NOT NULL,
		theatre_name  VARCHAR(255) NOT NULL,
		no_of_tickets INT NOT NULL CHECK (no_of_tickets > 0),
		seat_numbers  TEXT[] NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_movie_theatre ON tickets (movie_name, theatre_name)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		movie_id   UUID NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
		rating     DOUBLE PRECISION NOT NULL CHECK (rating >= 1 AND rating <= 5),
		title      VARCHAR(100) NOT NULL,
		content    VARCHAR(1000) NOT NULL,
		helpful    INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_movie ON reviews (movie_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews (user_id, created_at DESC)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}
