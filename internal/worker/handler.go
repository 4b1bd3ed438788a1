package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/joao-fontenele/order-intake/internal/domain"
)

type OrderCounter interface {
	CountByOrderID(ctx context.Context, orderID int64) (int64, error)
}

type AuditRecorder interface {
	RecordEvent(ctx context.Context, event domain.OrderCreatedEvent, persisted bool) error
}

// AuditHandler consumes order-created events and records an audit row
// per event. Because the intake saves orders best-effort, the audit
// also checks whether the order actually reached the store and flags
// the ones that were silently dropped.
type AuditHandler struct {
	orders OrderCounter
	audit  AuditRecorder
	logger *slog.Logger
}

func NewAuditHandler(orders OrderCounter, audit AuditRecorder, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		orders: orders,
		audit:  audit,
		logger: logger,
	}
}

func (h *AuditHandler) Handle(ctx context.Context, payload []byte) error {
	var event domain.OrderCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal order created event: %w", err)
	}

	h.logger.Info("auditing order event", "event_id", event.EventID, "order_id", event.OrderID)

	count, err := h.orders.CountByOrderID(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("check order persistence: %w", err)
	}

	persisted := count > 0
	if !persisted {
		h.logger.Warn("order missing from store", "order_id", event.OrderID, "customer", event.CustomerName)
	}

	if err := h.audit.RecordEvent(ctx, event, persisted); err != nil {
		return fmt.Errorf("record audit row: %w", err)
	}

	h.logger.Info("order event audited", "event_id", event.EventID, "persisted", persisted)
	return nil
}
