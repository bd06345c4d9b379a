// Package domain holds the order model shared by the store, service and
// transport layers.
package domain

// Order is a purchase record. Total carries the monetary value in the
// order's currency; Quantity is the number of units ordered.
type Order struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customer_id"`
	Total      float64 `json:"total"`
	Quantity   int     `json:"quantity"`
	Currency   string  `json:"currency"`
	Canceled   bool    `json:"canceled"`
}

// Cancel marks the order canceled. The flag is never cleared once set.
func (o *Order) Cancel() {
	o.Canceled = true
}
