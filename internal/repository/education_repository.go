package repository

import (
	"context"
	"time"

	"portfolio-api/internal/database"
)

// Education keeps GPA and graduation date as strings: the upstream data
// carries values like "4.0/4.0" and "May 2024" that a numeric or date
// column would mangle.
type Education struct {
	ID             int64
	Institution    string
	Degree         string
	FieldOfStudy   string
	GPA            string
	GraduationDate string
	Location       string
	CreatedAt      time.Time
}

type NewEducation struct {
	Institution    string
	Degree         string
	FieldOfStudy   string
	GPA            string
	GraduationDate string
	Location       string
}

type EducationRepository interface {
	CreateEducation(ctx context.Context, in NewEducation) (Education, error)
	ListEducation(ctx context.Context, offset, limit int) ([]Education, error)
}

type PostgresEducationRepository struct {
	db database.DB
}

func NewPostgresEducationRepository(db database.DB) *PostgresEducationRepository {
	return &PostgresEducationRepository{db: db}
}

func (r *PostgresEducationRepository) CreateEducation(ctx context.Context, in NewEducation) (Education, error) {
	out := Education{
		Institution:    in.Institution,
		Degree:         in.Degree,
		FieldOfStudy:   in.FieldOfStudy,
		GPA:            in.GPA,
		GraduationDate: in.GraduationDate,
		Location:       in.Location,
	}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO education (institution, degree, field_of_study, gpa, graduation_date, location)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		in.Institution, in.Degree, in.FieldOfStudy, in.GPA, in.GraduationDate, in.Location,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return Education{}, err
	}
	return out, nil
}

// ListEducation orders by graduation date descending. The comparison is
// lexicographic since the column is text.
func (r *PostgresEducationRepository) ListEducation(ctx context.Context, offset, limit int) ([]Education, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, institution, degree, field_of_study, gpa, graduation_date, location, created_at
		 FROM education
		 ORDER BY graduation_date DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Education, 0)
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.GPA, &e.GraduationDate, &e.Location, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
