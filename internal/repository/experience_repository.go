package repository

import (
	"context"
	"time"

	"portfolio-api/internal/database"
)

type Experience struct {
	ID          int64
	Company     string
	Position    string
	Duration    string
	Description string
	IsCurrent   bool
	CreatedAt   time.Time
}

// NewExperience is the caller-supplied part of an experience row.
type NewExperience struct {
	Company     string
	Position    string
	Duration    string
	Description string
	IsCurrent   bool
}

type ExperienceRepository interface {
	CreateExperience(ctx context.Context, in NewExperience) (Experience, error)
	ListExperiences(ctx context.Context, offset, limit int) ([]Experience, error)
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

func (r *PostgresExperienceRepository) CreateExperience(ctx context.Context, in NewExperience) (Experience, error) {
	out := Experience{
		Company:     in.Company,
		Position:    in.Position,
		Duration:    in.Duration,
		Description: in.Description,
		IsCurrent:   in.IsCurrent,
	}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO experiences (company, position, duration, description, is_current)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		in.Company, in.Position, in.Duration, in.Description, in.IsCurrent,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return Experience{}, err
	}
	return out, nil
}

// ListExperiences returns the newest rows first, ties broken by id.
func (r *PostgresExperienceRepository) ListExperiences(ctx context.Context, offset, limit int) ([]Experience, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, company, position, duration, description, is_current, created_at
		 FROM experiences
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Duration, &e.Description, &e.IsCurrent, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
