package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "proficiency", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM skills`); err != nil {
		return err
	}

	items := []struct {
		Name        string
		Category    string
		Proficiency int
	}{
		{Name: "Excel", Category: "Analytics Tools", Proficiency: 95},
		{Name: "Power BI", Category: "Analytics Tools", Proficiency: 85},
		{Name: "Tableau", Category: "Analytics Tools", Proficiency: 85},
		{Name: "SQL", Category: "Databases", Proficiency: 90},
		{Name: "PostgreSQL", Category: "Databases", Proficiency: 85},
		{Name: "MySQL", Category: "Databases", Proficiency: 85},
		{Name: "Python", Category: "Programming", Proficiency: 90},
		{Name: "Pandas", Category: "Programming", Proficiency: 90},
		{Name: "NumPy", Category: "Programming", Proficiency: 85},
		{Name: "AWS", Category: "Platforms", Proficiency: 75},
		{Name: "GCP", Category: "Platforms", Proficiency: 70},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (name, category, proficiency) VALUES ($1, $2, $3)`,
			it.Name, it.Category, it.Proficiency,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
