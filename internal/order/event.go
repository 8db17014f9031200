package order

import "time"

const EventTypeCompleted = "OrderCompleted"

type CompletedEvent struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	Payload   CompletedPayload `json:"payload"`
	Timestamp time.Time        `json:"timestamp"`
}

type CompletedPayload struct {
	OrderID string               `json:"order_id"`
	Items   []CompletedEventItem `json:"items"`
}

type CompletedEventItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}
