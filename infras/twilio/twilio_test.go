package twilio_test

import (
	"context"
	"realty/config"
	"realty/infras/twilio"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Twilio.AccountSID = "AC123"

	sms := twilio.New(cfg)

	assert.False(t, sms.Enabled())
	assert.ErrorIs(t, sms.Send(context.Background(), "+15550100", "hello"), twilio.ErrSMSDisabled)
}

func TestNew_EnabledWithoutCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.Notification.SMS.Enable = true

	assert.False(t, twilio.New(cfg).Enabled())
}

func TestNew_Enabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Notification.SMS.Enable = true
	cfg.External.Twilio.AccountSID = "AC123"
	cfg.External.Twilio.AuthToken = "token"

	sms := twilio.New(cfg)
	assert.True(t, sms.Enabled())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sms.Send(ctx, "+15550100", "hello"), context.Canceled)
}
