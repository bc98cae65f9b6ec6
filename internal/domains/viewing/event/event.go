package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"realty/config"
	"realty/infras/kafka"
	"realty/internal/domains/viewing/model"
	"realty/shared/constant"
	"realty/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeBooked        = "viewing.booked"
	TypeStatusChanged = "viewing.status_changed"
	TypeReminderSent  = "viewing.reminder_sent"
)

const publishTimeout = 5 * time.Second

type Payload struct {
	Type         string `json:"type"`
	ViewingID    string `json:"viewing_id"`
	PropertyID   string `json:"property_id"`
	Status       string `json:"status"`
	ViewingDate  string `json:"viewing_date"`
	ViewingTime  string `json:"viewing_time"`
	ReminderSent bool   `json:"reminder_sent"`
	OccurredAt   string `json:"occurred_at"`
}

func NewPayload(eventType string, viewing model.Viewing, at time.Time) Payload {
	return Payload{
		Type:         eventType,
		ViewingID:    viewing.ID,
		PropertyID:   viewing.PropertyID,
		Status:       viewing.Status,
		ViewingDate:  timezone.Format(viewing.ViewingDate, constant.DayFormat),
		ViewingTime:  viewing.ViewingTime,
		ReminderSent: viewing.ReminderSent,
		OccurredAt:   timezone.Format(at, constant.DateFormat),
	}
}

// Publisher fans viewing lifecycle events out to Kafka. Publishing never
// blocks or fails the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType string, viewing model.Viewing)
}

type publisherImpl struct {
	client kafka.Client
	topic  string
}

func New(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		topic:  cfg.Kafka.Topic,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType string, viewing model.Viewing) {
	payload := NewPayload(eventType, viewing, timezone.Now())

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		// keyed by property so one property's events stay ordered within a partition
		err := p.client.SendMessages(c, p.topic, kafka.Message{Key: viewing.PropertyID, Value: payload})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("viewingID", viewing.ID).Msg("failed to publish viewing event")
		}
	}()
}
