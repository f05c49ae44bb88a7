package postgres

import (
	"context"
	"fmt"
)

// schemaStatements bootstraps the three tables. Genre and state
// membership stays an application-layer guarantee enforced by the form
// validators; the schema only guarantees the relational invariants
// (non-null show foreign keys, required timestamps).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  BIGSERIAL PRIMARY KEY,
		name                TEXT NOT NULL,
		genres              TEXT[] NOT NULL DEFAULT '{}',
		address             TEXT NOT NULL DEFAULT '',
		city                TEXT NOT NULL,
		state               TEXT NOT NULL,
		phone               TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		website_link        TEXT NOT NULL DEFAULT '',
		seeking_talent      BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  BIGSERIAL PRIMARY KEY,
		name                TEXT NOT NULL,
		genres              TEXT[] NOT NULL DEFAULT '{}',
		city                TEXT NOT NULL,
		state               TEXT NOT NULL,
		phone               TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		website_link        TEXT NOT NULL DEFAULT '',
		seeking_venue       BOOLEAN NOT NULL DEFAULT FALSE,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id         BIGSERIAL PRIMARY KEY,
		artist_id  BIGINT NOT NULL REFERENCES artists(id),
		venue_id   BIGINT NOT NULL REFERENCES venues(id),
		start_time TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows(venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows(artist_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_start_time ON shows(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_venues_city_state ON venues(city, state)`,
}

// EnsureSchema applies the DDL idempotently at startup.
func EnsureSchema(ctx context.Context, db DB) error {
	const op = "postgres.EnsureSchema"

	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: statement %d: %w", op, i+1, err)
		}
	}

	return nil
}
