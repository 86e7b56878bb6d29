package events

import (
	"encoding/json"
	"time"
)

// Event kinds published by the shop service.
const (
	KindOrderCreated    = "order.created"
	KindOrderDeleted    = "order.deleted"
	KindExpenseRecorded = "expense.recorded"
)

// ShopEvent is the wire message for every shop-side event. Consumers that
// need full records fetch them via the API; the message carries just
// enough to act on (kitchen tickets show the lines).
type ShopEvent struct {
	Kind      string      `json:"kind"`
	ID        string      `json:"id"`
	Total     float64     `json:"total,omitempty"`
	Lines     []TicketLine `json:"lines,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// TicketLine is the name/quantity pair a kitchen display needs.
type TicketLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewOrderCreated builds an order.created event.
func NewOrderCreated(id string, total float64, lines []TicketLine) *ShopEvent {
	return &ShopEvent{Kind: KindOrderCreated, ID: id, Total: total, Lines: lines, Timestamp: time.Now()}
}

// NewOrderDeleted builds an order.deleted event.
func NewOrderDeleted(id string) *ShopEvent {
	return &ShopEvent{Kind: KindOrderDeleted, ID: id, Timestamp: time.Now()}
}

// NewExpenseRecorded builds an expense.recorded event.
func NewExpenseRecorded(id string, amount float64) *ShopEvent {
	return &ShopEvent{Kind: KindExpenseRecorded, ID: id, Total: amount, Timestamp: time.Now()}
}

// ToJSON converts the event to JSON bytes.
func (e *ShopEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// FromJSON decodes an event from JSON bytes.
func FromJSON(data []byte) (*ShopEvent, error) {
	var e ShopEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
