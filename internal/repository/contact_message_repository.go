package repository

import (
	"context"
	"time"

	"portfolio-api/internal/database"
)

type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type NewContactMessage struct {
	Name    string
	Email   string
	Message string
}

type ContactMessageRepository interface {
	CreateContactMessage(ctx context.Context, in NewContactMessage) (ContactMessage, error)
	ListContactMessages(ctx context.Context, offset, limit int) ([]ContactMessage, error)
}

type PostgresContactMessageRepository struct {
	db database.DB
}

func NewPostgresContactMessageRepository(db database.DB) *PostgresContactMessageRepository {
	return &PostgresContactMessageRepository{db: db}
}

func (r *PostgresContactMessageRepository) CreateContactMessage(ctx context.Context, in NewContactMessage) (ContactMessage, error) {
	out := ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO contact_messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		in.Name, in.Email, in.Message,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return ContactMessage{}, err
	}
	return out, nil
}

// ListContactMessages returns the newest messages first.
func (r *PostgresContactMessageRepository) ListContactMessages(ctx context.Context, offset, limit int) ([]ContactMessage, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, email, message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ContactMessage, 0)
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
