package history

import (
	"sync"
	"testing"

	"github.com/joao-fontenele/order-intake/internal/domain"
)

func TestStore_AppendAndSnapshot(t *testing.T) {
	t.Run("snapshot preserves insertion order", func(t *testing.T) {
		store := NewStore()
		store.Append(domain.Order{ID: 1, CustomerName: "first"})
		store.Append(domain.Order{ID: 2, CustomerName: "second"})
		store.Append(domain.Order{ID: 3, CustomerName: "third"})

		snap := store.Snapshot()
		if len(snap) != 3 {
			t.Fatalf("expected 3 orders, got %d", len(snap))
		}
		for i, want := range []int64{1, 2, 3} {
			if snap[i].ID != want {
				t.Errorf("position %d: expected id %d, got %d", i, want, snap[i].ID)
			}
		}
	})

	t.Run("snapshot is isolated from later appends", func(t *testing.T) {
		store := NewStore()
		store.Append(domain.Order{ID: 1})

		snap := store.Snapshot()
		store.Append(domain.Order{ID: 2})

		if len(snap) != 1 {
			t.Errorf("expected snapshot of 1, got %d", len(snap))
		}
		if store.Len() != 2 {
			t.Errorf("expected store length 2, got %d", store.Len())
		}
	})

	t.Run("empty store snapshots to empty slice", func(t *testing.T) {
		store := NewStore()
		if snap := store.Snapshot(); len(snap) != 0 {
			t.Errorf("expected empty snapshot, got %d entries", len(snap))
		}
	})
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store := NewStore()

	const writers = 100
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(id int64) {
			defer wg.Done()
			store.Append(domain.Order{ID: id})
		}(int64(i + 1))
	}
	wg.Wait()

	if store.Len() != writers {
		t.Fatalf("expected %d orders after concurrent appends, got %d", writers, store.Len())
	}

	seen := make(map[int64]bool, writers)
	for _, o := range store.Snapshot() {
		seen[o.ID] = true
	}
	if len(seen) != writers {
		t.Errorf("expected %d distinct ids, got %d", writers, len(seen))
	}
}
