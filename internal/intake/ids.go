package intake

import (
	"math/rand/v2"

	"github.com/joao-fontenele/order-intake/internal/domain"
)

// IDSource yields order identities. Injecting it lets tests pin ids
// instead of depending on process randomness.
type IDSource interface {
	Next() int64
}

// RandomIDs draws uniform ids from [1, domain.MaxOrderID] using a
// non-cryptographic source. Uniqueness is not guaranteed: two
// concurrent creations can collide, which the legacy contract allows.
type RandomIDs struct{}

func (RandomIDs) Next() int64 {
	return rand.Int64N(domain.MaxOrderID) + 1
}
