package events

import (
	"time"

	"cart-service/internal/entity"
)

// BillCommitted is published once per committed bill.
type BillCommitted struct {
	EventID     string            `json:"event_id"`
	OrderID     int64             `json:"order_id"`
	UserID      string            `json:"user_id"`
	ServiceID   int64             `json:"service_id"`
	TotalAmount float64           `json:"total_amount"`
	Items       []entity.LineItem `json:"items"`
	Timestamp   time.Time         `json:"timestamp"`
}
