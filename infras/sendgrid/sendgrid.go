package sendgrid

//go:generate go run go.uber.org/mock/mockgen -source=./sendgrid.go -destination=./mocks/sendgrid_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"realty/config"

	"github.com/rs/zerolog/log"
	sendgridGo "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrEmptyRecipient = errors.New("email recipient is empty")

type Email struct {
	ToName    string
	ToAddress string
	Subject   string
	PlainText string
	HTML      string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type mailerImpl struct {
	client      *sendgridGo.Client
	fromName    string
	fromEmail   string
	sandboxMode bool
}

// New returns a SendGrid backed mailer. When no API key is configured every
// email is logged and dropped so local runs need no credentials.
func New(config *config.Config) Mailer {
	if config.External.SendGrid.APIKey == "" {
		log.Warn().Msg("SendGrid API key not configured, emails will only be logged")

		return &logMailer{}
	}

	return &mailerImpl{
		client:      sendgridGo.NewSendClient(config.External.SendGrid.APIKey),
		fromName:    config.Notification.FromName,
		fromEmail:   config.Notification.FromEmail,
		sandboxMode: config.Notification.SandboxMode,
	}
}

func (m *mailerImpl) Send(ctx context.Context, email Email) error {
	if email.ToAddress == "" {
		return ErrEmptyRecipient
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(email.ToName, email.ToAddress)
	msg := mail.NewSingleEmail(from, email.Subject, to, email.PlainText, email.HTML)

	if m.sandboxMode {
		settings := mail.NewMailSettings()
		settings.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = settings
	}

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("failed to send email: sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

type logMailer struct{}

func (logMailer) Send(_ context.Context, email Email) error {
	if email.ToAddress == "" {
		return ErrEmptyRecipient
	}

	log.Info().Str("to", email.ToAddress).Str("subject", email.Subject).Msg("Email delivery disabled, skipping send")

	return nil
}
