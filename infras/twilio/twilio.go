package twilio

//go:generate go run go.uber.org/mock/mockgen -source=./twilio.go -destination=./mocks/twilio_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"realty/config"

	"github.com/rs/zerolog/log"
	twilioGo "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrSMSDisabled = errors.New("sms delivery disabled")

type SMS interface {
	Enabled() bool
	Send(ctx context.Context, to, body string) error
}

type smsImpl struct {
	client    *twilioGo.RestClient
	fromPhone string
}

// New returns a Twilio backed sender, or a disabled one when SMS is switched
// off or credentials are missing.
func New(config *config.Config) SMS {
	if !config.Notification.SMS.Enable || config.External.Twilio.AccountSID == "" {
		log.Info().Msg("SMS delivery disabled")

		return disabledSMS{}
	}

	return &smsImpl{
		client: twilioGo.NewRestClientWithParams(twilioGo.ClientParams{
			Username: config.External.Twilio.AccountSID,
			Password: config.External.Twilio.AuthToken,
		}),
		fromPhone: config.Notification.SMS.FromPhone,
	}
}

func (s *smsImpl) Enabled() bool {
	return true
}

// Send posts a single message. The Twilio client has no context support, so
// ctx only short-circuits a call that is already cancelled.
func (s *smsImpl) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromPhone)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}

	return nil
}

type disabledSMS struct{}

func (disabledSMS) Enabled() bool {
	return false
}

func (disabledSMS) Send(_ context.Context, _, _ string) error {
	return ErrSMSDisabled
}
