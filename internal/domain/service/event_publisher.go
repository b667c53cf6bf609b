package service

import (
	"context"
	"time"
)

// Card event types
const (
	CardEventCreated = "card.created"
	CardEventUpdated = "card.updated"
)

// CardEvent is published after a card write has been stored
type CardEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	CardID     string    `json:"card_id"`
	URLSlug    string    `json:"url_slug"`
	OwnerID    string    `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCardEvent publishes a card change event
	PublishCardEvent(ctx context.Context, event *CardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
