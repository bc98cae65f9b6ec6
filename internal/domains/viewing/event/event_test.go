package event_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"realty/config"
	"realty/infras/kafka"
	kafkaMocks "realty/infras/kafka/mocks"
	"realty/internal/domains/viewing/event"
	"realty/internal/domains/viewing/model"
)

func TestNewPayload(t *testing.T) {
	viewing := model.Viewing{
		ID:          "v-1",
		PropertyID:  "42",
		Status:      model.StatusScheduled,
		ViewingDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ViewingTime: "10:00",
	}

	payload := event.NewPayload(event.TypeBooked, viewing, time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, event.TypeBooked, payload.Type)
	assert.Equal(t, "v-1", payload.ViewingID)
	assert.Equal(t, "2026-03-01", payload.ViewingDate)
	assert.Equal(t, "10:00", payload.ViewingTime)
	assert.Equal(t, "2026-02-01T08:00:00Z", payload.OccurredAt)
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topic = "viewing-events"

	var wg sync.WaitGroup
	wg.Add(1)

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "viewing-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			defer wg.Done()

			assert.Len(t, messages, 1)
			assert.Equal(t, "42", messages[0].Key)

			payload, ok := messages[0].Value.(event.Payload)
			assert.True(t, ok)
			assert.Equal(t, event.TypeStatusChanged, payload.Type)

			return nil
		})

	event.New(mockClient, cfg).Publish(context.Background(), event.TypeStatusChanged, model.Viewing{ID: "v-1", PropertyID: "42"})

	wg.Wait()
}
