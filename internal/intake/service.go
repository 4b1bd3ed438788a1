package intake

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/joao-fontenele/order-intake/internal/applog"
	"github.com/joao-fontenele/order-intake/internal/domain"
)

// DefaultDelay is the legacy simulated-processing interval. Every
// intake blocks this long before responding, modeling a slow
// downstream dependency.
const DefaultDelay = 1500 * time.Millisecond

// Saver is the persistence gateway boundary. A failed save must not
// fail the intake; the service suppresses it.
type Saver interface {
	Save(ctx context.Context, order domain.Order) (int64, error)
}

// Publisher is the event boundary. Publishing is best-effort in the
// same way persistence is.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Service runs the order-intake use case: construct, record, attempt
// persistence, announce, wait, respond. There is no failure path out
// of Execute; construction cannot fail and every side effect past it
// is suppressed.
type Service struct {
	factory   *Factory
	saver     Saver
	publisher Publisher
	logger    *applog.Logger
	delay     time.Duration

	ordersCreated   metric.Int64Counter
	persistFailures metric.Int64Counter
}

// NewService wires the orchestrator. publisher may be nil when no
// broker is configured. delay <= 0 falls back to DefaultDelay.
func NewService(factory *Factory, saver Saver, publisher Publisher, logger *applog.Logger, delay time.Duration) (*Service, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}

	meter := otel.Meter("intake")

	ordersCreated, err := meter.Int64Counter("intake.orders.created",
		metric.WithDescription("Orders constructed by the intake pipeline"),
	)
	if err != nil {
		return nil, err
	}

	persistFailures, err := meter.Int64Counter("intake.persist.failures",
		metric.WithDescription("Best-effort order saves that did not reach the store"),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		factory:         factory,
		saver:           saver,
		publisher:       publisher,
		logger:          logger,
		delay:           delay,
		ordersCreated:   ordersCreated,
		persistFailures: persistFailures,
	}, nil
}

// Execute returns the created order together with a persisted flag.
// The flag is the only durability signal the caller gets: a false
// value means the order exists in history but the store write was
// dropped (and logged). Execute always runs to completion, including
// the simulated-processing delay; there is no cancellation path.
func (s *Service) Execute(ctx context.Context, customer, product string, qty int, price float64) (domain.Order, bool) {
	s.logger.Log("order intake starting", "customer", customer)

	order := s.factory.Create(customer, product, qty, price)
	s.logger.Log("order created", "order_id", order.ID, "customer", order.CustomerName)
	s.ordersCreated.Add(ctx, 1)

	persisted := s.logger.Try("save order", func() error {
		_, err := s.saver.Save(ctx, order)
		return err
	})
	if !persisted {
		s.persistFailures.Add(ctx, 1)
	}

	if s.publisher != nil {
		s.logger.Try("publish order created", func() error {
			event := domain.OrderCreatedEvent{
				EventID:      uuid.New().String(),
				OrderID:      order.ID,
				CustomerName: order.CustomerName,
				ProductName:  order.ProductName,
				Quantity:     order.Quantity,
				UnitPrice:    order.UnitPrice,
				Timestamp:    order.CreatedAt,
			}
			return s.publisher.Publish(ctx, strconv.FormatInt(order.ID, 10), event)
		})
	}

	time.Sleep(s.delay)

	return order, persisted
}
