package domain

import "time"

// MaxOrderID is the upper bound (inclusive) for generated order IDs.
// IDs are drawn uniformly from [1, MaxOrderID]; collisions between
// concurrent creations are possible and tolerated.
const MaxOrderID = 9_999_999

type Order struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	CreatedAt    time.Time `json:"created_at"`
}
