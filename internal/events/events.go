// Package events publishes settlement lifecycle notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectPrefix is prepended to every event subject.
// Subjects follow the pattern: settleup.events.{event_type}.{group_id}
const SubjectPrefix = "settleup.events"

const (
	TypeSettlementInvalidated = "settlement.invalidated"
	TypeSettlementComputed    = "settlement.computed"
)

// Event is a settlement lifecycle notification.
type Event struct {
	Type         string    `json:"event_type"`
	GroupID      string    `json:"group_id"`
	Transactions int       `json:"transactions,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Subject returns the NATS subject the event is published on.
func (e Event) Subject() string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, e.Type, e.GroupID)
}

// Publisher delivers events to downstream consumers.
// Delivery is best effort; callers log and ignore failures.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// conn is the subset of *nats.Conn used for publishing.
type conn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes events as JSON over core NATS.
type NATSPublisher struct {
	conn conn
	nc   *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("settleup"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	return &NATSPublisher{conn: nc, nc: nc}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(evt.Subject(), data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", evt.Subject(), err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}
