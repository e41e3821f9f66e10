package seeder

import (
	"context"
	"fmt"

	"portfolio-api/internal/database"
)

type EducationSeeder struct{}

func (EducationSeeder) Name() string { return "education" }

func (EducationSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "education", "id", "institution", "degree", "field_of_study", "gpa", "graduation_date", "location", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM education`); err != nil {
		return err
	}

	items := []struct {
		Institution    string
		Degree         string
		FieldOfStudy   string
		GPA            string
		GraduationDate string
		Location       string
	}{
		{
			Institution:    "Concordia University, St Paul",
			Degree:         "Master of Science",
			FieldOfStudy:   "Information Technology Management",
			GPA:            "3.8/4.0",
			GraduationDate: "2024",
			Location:       "St Paul, MN",
		},
		{
			Institution:    "Osmania University",
			Degree:         "Bachelor of Engineering",
			FieldOfStudy:   "Computer Science",
			GPA:            "3.6/4.0",
			GraduationDate: "2021",
			Location:       "Hyderabad, India",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO education (institution, degree, field_of_study, gpa, graduation_date, location) VALUES ($1, $2, $3, $4, $5, $6)`,
			it.Institution, it.Degree, it.FieldOfStudy, it.GPA, it.GraduationDate, it.Location,
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
