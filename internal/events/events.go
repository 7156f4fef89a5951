package events

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

const (
	// TableStatusTopic delivers authoritative status changes for tables.
	TableStatusTopic = "tables.status"
	// OrderStatusTopic delivers order lifecycle changes.
	OrderStatusTopic = "orders.status"

	EventTableStatusChanged = "table.status.changed"
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status.changed"
)

// TableStatusEvent captures what a consumer needs to reason about a
// table's availability.
type TableStatusEvent struct {
	EventType      string    `json:"event_type"`
	TableID        int       `json:"table_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// OrderStatusEvent announces a new order or a status overwrite on an
// existing one.
type OrderStatusEvent struct {
	EventType      string    `json:"event_type"`
	OrderID        string    `json:"order_id"`
	TableNumber    int       `json:"table_number,omitempty"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Total          float64   `json:"total,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher pushes serialized domain events to interested consumers.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg []byte) error
	Close() error
}

// PublishJSON marshals event and publishes it on topic. Failures are
// logged rather than returned; event delivery must never fail the write
// that produced the event.
func PublishJSON(ctx context.Context, pub Publisher, topic string, event interface{}) {
	msg, err := json.Marshal(event)
	if err == nil {
		err = pub.Publish(ctx, topic, msg)
	}
	if err != nil {
		log.Printf("Warning: failed to publish %s event: %v", topic, err)
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, topic string, msg []byte) error { return nil }
func (NoopPublisher) Close() error                                                { return nil }
