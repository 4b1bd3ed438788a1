package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/joao-fontenele/order-intake/internal/domain"
)

// AuditRepository records processed order-created events. Event ids
// are unique, so redelivered events collapse into a single row.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) RecordEvent(ctx context.Context, event domain.OrderCreatedEvent, persisted bool) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_audit (event_id, order_id, customer_name, persisted, processed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`, event.EventID, event.OrderID, event.CustomerName, persisted, time.Now().UTC())
	return err
}
