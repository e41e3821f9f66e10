package repository

import (
	"context"
	"time"

	"portfolio-api/internal/database"
)

type Project struct {
	ID           int64
	Title        string
	Description  string
	Technologies string
	GitHubURL    string
	CreatedAt    time.Time
}

type NewProject struct {
	Title        string
	Description  string
	Technologies string
	GitHubURL    string
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, in NewProject) (Project, error)
	ListProjects(ctx context.Context, offset, limit int) ([]Project, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) CreateProject(ctx context.Context, in NewProject) (Project, error) {
	out := Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		GitHubURL:    in.GitHubURL,
	}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO projects (title, description, technologies, github_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		in.Title, in.Description, in.Technologies, in.GitHubURL,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return Project{}, err
	}
	return out, nil
}

// ListProjects returns rows in insertion order. The order is a weak
// guarantee; callers must not rely on anything stronger.
func (r *PostgresProjectRepository) ListProjects(ctx context.Context, offset, limit int) ([]Project, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, description, technologies, github_url, created_at
		 FROM projects
		 ORDER BY id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies, &p.GitHubURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
