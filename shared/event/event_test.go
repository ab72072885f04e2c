package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"todolist/infras/kafka"
	kafkaMocks "todolist/infras/kafka/mocks"
	otelMocks "todolist/infras/otel/mocks"
	"todolist/shared/constant"
	"todolist/shared/event"
)

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
	}{
		{name: "delivered"},
		{name: "delivery failure is swallowed", sendErr: errors.New("broker down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)

			done := make(chan kafka.Message, 1)
			client.EXPECT().SendMessages(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, messages ...kafka.Message) error {
					done <- messages[0]
					return tt.sendErr
				},
			)

			publisher := event.NewPublisher(client, otelMocks.NewOtel())

			ctx, cancel := context.WithCancel(context.Background())
			publisher.Publish(ctx, event.Event{Type: constant.EventTodoCreated, TodoID: "todo-1", ActorID: "user-1"})
			cancel()

			select {
			case msg := <-done:
				assert.Equal(t, "todo-1", msg.Key)

				evt, ok := msg.Value.(event.Event)
				assert.True(t, ok)
				assert.Equal(t, constant.EventTodoCreated, evt.Type)
				assert.False(t, evt.OccurredAt.IsZero())
			case <-time.After(time.Second):
				t.Fatal("event was not published")
			}
		})
	}
}
