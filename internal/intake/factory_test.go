package intake

import (
	"testing"

	"github.com/joao-fontenele/order-intake/internal/domain"
	"github.com/joao-fontenele/order-intake/internal/history"
)

type sequentialIDs struct {
	next int64
}

func (s *sequentialIDs) Next() int64 {
	s.next++
	return s.next
}

func TestFactory_Create(t *testing.T) {
	t.Run("keeps raw fields verbatim", func(t *testing.T) {
		store := history.NewStore()
		factory := NewFactory(store, &sequentialIDs{})

		order := factory.Create("Alice", "Widget", 3, 9.99)

		if order.CustomerName != "Alice" || order.ProductName != "Widget" {
			t.Errorf("unexpected names: %q / %q", order.CustomerName, order.ProductName)
		}
		if order.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", order.Quantity)
		}
		if order.UnitPrice != 9.99 {
			t.Errorf("expected unit price 9.99, got %v", order.UnitPrice)
		}
		if order.CreatedAt.IsZero() {
			t.Error("expected created_at to be set")
		}
	})

	t.Run("accepts empty and negative inputs without validation", func(t *testing.T) {
		store := history.NewStore()
		factory := NewFactory(store, &sequentialIDs{})

		order := factory.Create("", "", -2, -0.5)

		if order.Quantity != -2 || order.UnitPrice != -0.5 {
			t.Errorf("expected raw values preserved, got qty=%d price=%v", order.Quantity, order.UnitPrice)
		}
	})

	t.Run("appends every order to the history", func(t *testing.T) {
		store := history.NewStore()
		factory := NewFactory(store, &sequentialIDs{})

		first := factory.Create("a", "x", 1, 1)
		second := factory.Create("b", "y", 2, 2)

		snap := store.Snapshot()
		if len(snap) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(snap))
		}
		if snap[0].ID != first.ID || snap[1].ID != second.ID {
			t.Errorf("history order mismatch: %d,%d vs %d,%d", snap[0].ID, snap[1].ID, first.ID, second.ID)
		}
	})
}

func TestRandomIDs_Range(t *testing.T) {
	ids := RandomIDs{}
	for i := 0; i < 1000; i++ {
		id := ids.Next()
		if id < 1 || id > domain.MaxOrderID {
			t.Fatalf("id %d out of range [1, %d]", id, domain.MaxOrderID)
		}
	}
}
