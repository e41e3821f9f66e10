// Package seeder populates the portfolio tables with sample data. It is
// run by cmd/seed, never by the server itself.
package seeder

import (
	"context"

	"portfolio-api/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// All returns the seeders in the order they should run.
func All() []Seeder {
	return []Seeder{
		ExperiencesSeeder{},
		ProjectsSeeder{},
		SkillsSeeder{},
		EducationSeeder{},
	}
}
