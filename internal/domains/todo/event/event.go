package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/kafka"
	"todos/infras/otel"
	"todos/shared/constant"
	"todos/shared/timezone"
)

type Type string

const (
	Created          Type = "todo.created"
	Updated          Type = "todo.updated"
	Deleted          Type = "todo.deleted"
	AttachmentIssued Type = "todo.attachment_issued"
)

// Event describes a completed change to one todo. It never carries item
// content beyond identifiers.
type Event struct {
	Type       Type      `json:"type"`
	UserID     string    `json:"userId"`
	TodoID     string    `json:"todoId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(typ Type, userID, todoID string) Event {
	return Event{
		Type:       typ,
		UserID:     userID,
		TodoID:     todoID,
		OccurredAt: timezone.Now(),
	}
}

// Publisher announces todo lifecycle events. Publishing is best effort: a
// failure is logged and never surfaces to the request that caused it.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Event) {}

// NewPublisher returns a Kafka backed publisher, or a no-op one when no
// brokers are configured.
func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if len(cfg.Kafka.Brokers) == 0 || client == nil {
		log.Info().Msg("No Kafka brokers configured, todo events are disabled")

		return noopPublisher{}
	}

	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event Event) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event_type": string(event.Type),
		"todo_id":    event.TodoID,
	})

	// Keyed by owner so one owner's events stay ordered within a partition.
	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.UserID, Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("event_type", string(event.Type)).
			Str("todo_id", event.TodoID).
			Msg("failed to publish todo event")
	}
}
