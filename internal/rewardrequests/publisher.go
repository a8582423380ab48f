package rewardrequests

import (
	"context"
	"time"

	"reward-platform/internal/clients/kafka"
	"reward-platform/internal/observability"
	"reward-platform/internal/rewardrequests/processor"
)

// EventRewardRequestDecided is the type of the message emitted for every persisted claim
const EventRewardRequestDecided = "reward_request.decided"

type eventWriter interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher turns claim decisions into Kafka messages keyed by user
type Publisher struct {
	writer eventWriter
	logger *observability.Logger
}

// NewPublisher creates a new decision publisher
func NewPublisher(writer eventWriter, logger *observability.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger,
	}
}

// PublishDecision publishes a reward_request.decided event
func (p *Publisher) PublishDecision(ctx context.Context, decision processor.Decision) error {
	event := kafka.EventMessage{
		ID:   decision.RequestID.String(),
		Type: EventRewardRequestDecided,
		Key:  decision.UserID,
		Data: map[string]interface{}{
			"request_id": decision.RequestID.String(),
			"user_id":    decision.UserID,
			"event_id":   decision.EventID.String(),
			"condition":  decision.Condition,
			"status":     decision.Status,
		},
		Timestamp: decision.DecidedAt.UTC().Format(time.RFC3339),
	}

	return p.writer.PublishEvent(ctx, event)
}

// NoopPublisher discards decisions; used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) PublishDecision(context.Context, processor.Decision) error { return nil }
