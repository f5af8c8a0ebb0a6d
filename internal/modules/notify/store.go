// README: Message log store backed by PostgreSQL.
package notify

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"courier/internal/types"
)

// MessageLog persists one row per dispatch attempt.
type MessageLog interface {
	LogMessage(ctx context.Context, req *Request) error
	UpdateStatus(ctx context.Context, id types.ID, status Status) error
}

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ MessageLog = (*Store)(nil)

func (s *Store) LogMessage(ctx context.Context, req *Request) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO message_logs (
			id, message_type, recipient, booking_id, template_code,
			subject, body, status, triggered_by, cost, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		string(req.ID), req.MessageType, req.Recipient, string(req.BookingID), req.TemplateCode,
		req.Subject, req.Body, string(req.Status), req.TriggeredBy, req.Cost, req.CreatedAt,
	)
	return err
}

func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status Status) error {
	_, err := s.db.Exec(ctx, `
		UPDATE message_logs SET status = $1 WHERE id = $2`,
		string(status), string(id),
	)
	return err
}
