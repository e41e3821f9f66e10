// Package schema creates the portfolio tables. Creation is idempotent and
// runs at process start; there is no migration machinery on purpose.
package schema

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS experiences (
	id BIGSERIAL PRIMARY KEY,
	company TEXT NOT NULL,
	position TEXT NOT NULL,
	duration TEXT NOT NULL,
	description TEXT NOT NULL,
	is_current BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS projects (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	technologies TEXT NOT NULL,
	github_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS skills (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	proficiency INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS education (
	id BIGSERIAL PRIMARY KEY,
	institution TEXT NOT NULL,
	degree TEXT NOT NULL,
	field_of_study TEXT NOT NULL,
	gpa TEXT NOT NULL,
	graduation_date TEXT NOT NULL,
	location TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
}

// Ensure creates every table that does not exist yet.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
