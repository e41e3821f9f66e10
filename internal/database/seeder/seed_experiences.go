package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type ExperiencesSeeder struct{}

func (ExperiencesSeeder) Name() string { return "experiences" }

func (ExperiencesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "experiences", "id", "company", "position", "duration", "description", "is_current", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM experiences`); err != nil {
		return err
	}

	items := []struct {
		Company     string
		Position    string
		Duration    string
		Description string
		IsCurrent   bool
	}{
		{
			Company:     "Coder's Data LLC",
			Position:    "Data Analyst",
			Duration:    "Dec 2023 - Present",
			Description: "Maintained and validated provider and vendor data across systems, automated recurring reporting in Python, and delivered dashboards that informed decisions on data integrity and compliance.",
			IsCurrent:   true,
		},
		{
			Company:     "Ayant Software Pvt. Ltd",
			Position:    "Jr. Data Analyst",
			Duration:    "Jan 2021 - Nov 2022",
			Description: "Processed large provider and claim datasets, performed data mapping and validation before system uploads, and supported cloud data migration projects on AWS S3 and GCP BigQuery.",
			IsCurrent:   false,
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO experiences (company, position, duration, description, is_current) VALUES ($1, $2, $3, $4, $5)`,
			it.Company, it.Position, it.Duration, it.Description, it.IsCurrent,
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
