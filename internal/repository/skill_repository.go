package repository

import (
	"context"
	"time"

	"portfolio-api/internal/database"
)

type Skill struct {
	ID          int64
	Name        string
	Category    string
	Proficiency int
	CreatedAt   time.Time
}

type NewSkill struct {
	Name        string
	Category    string
	Proficiency int
}

type SkillRepository interface {
	CreateSkill(ctx context.Context, in NewSkill) (Skill, error)
	ListSkills(ctx context.Context, offset, limit int) ([]Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, in NewSkill) (Skill, error) {
	out := Skill{
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: in.Proficiency,
	}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO skills (name, category, proficiency)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		in.Name, in.Category, in.Proficiency,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return Skill{}, err
	}
	return out, nil
}

// ListSkills returns rows in insertion order, same weak guarantee as
// ListProjects.
func (r *PostgresSkillRepository) ListSkills(ctx context.Context, offset, limit int) ([]Skill, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, proficiency, created_at
		 FROM skills
		 ORDER BY id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
