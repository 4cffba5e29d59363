package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered     EventType = "user_registered"
	EventUserLoggedIn       EventType = "user_logged_in"
	EventUserLoggedOut      EventType = "user_logged_out"
	EventOrderPlaced        EventType = "order_placed"
	EventOrderFulfilled     EventType = "order_fulfilled"
	EventOrderFulfillFailed EventType = "order_fulfill_failed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID     string  `json:"order_id"`
	FranchiseID string  `json:"franchise_id"`
	StoreID     string  `json:"store_id"`
	Items       int     `json:"items"`
	Total       float64 `json:"total"`
}

// OrderFulfillFailedPayload payload.
type OrderFulfillFailedPayload struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}
