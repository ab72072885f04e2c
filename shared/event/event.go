package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"todolist/infras/kafka"
	"todolist/infras/otel"
	"todolist/shared/constant"
	"todolist/shared/timezone"
)

// Event describes one todo or sub-todo change. Events are keyed by todo id so a todo's
// history stays on one partition.
type Event struct {
	Type       string    `json:"type"`
	TodoID     string    `json:"todo_id"`
	SubTodoID  string    `json:"sub_todo_id,omitempty"`
	ActorID    string    `json:"actor_id"`
	Checked    *bool     `json:"checked,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event)
}

type publisherImpl struct {
	client kafka.Client
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		otel:   otel,
	}
}

// Publish sends the event in the background; delivery failures are logged and never reach the caller.
func (p *publisherImpl) Publish(ctx context.Context, evt Event) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = timezone.Now()
	}

	ctx = context.WithoutCancel(ctx)

	go func() {
		var err error

		ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()
		defer func() { scope.TraceIfError(err) }()

		scope.SetAttribute("event.type", evt.Type)

		err = p.client.SendMessages(ctx, kafka.Message{Key: evt.TodoID, Value: evt})
		if err != nil {
			log.Warn().Err(err).Str("type", evt.Type).Str("todo_id", evt.TodoID).Msg("failed to publish event")
		}
	}()
}
