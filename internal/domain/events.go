package domain

import "time"

type OrderCreatedEvent struct {
	EventID      string    `json:"event_id"`
	OrderID      int64     `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	Timestamp    time.Time `json:"timestamp"`
}
