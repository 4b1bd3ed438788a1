package intake

import (
	"time"

	"github.com/joao-fontenele/order-intake/internal/domain"
	"github.com/joao-fontenele/order-intake/internal/history"
)

// Factory constructs orders and records them in the shared history.
// It is the only writer of the history store.
type Factory struct {
	history *history.Store
	ids     IDSource
	now     func() time.Time
}

func NewFactory(store *history.Store, ids IDSource) *Factory {
	return &Factory{
		history: store,
		ids:     ids,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create builds an order from raw fields as-is: no validation, no
// collision check, no failure path. The order is appended to the
// history before it is returned, so the history always holds the same
// identity the caller saw.
func (f *Factory) Create(customer, product string, qty int, price float64) domain.Order {
	order := domain.Order{
		ID:           f.ids.Next(),
		CustomerName: customer,
		ProductName:  product,
		Quantity:     qty,
		UnitPrice:    price,
		CreatedAt:    f.now(),
	}
	f.history.Append(order)
	return order
}
