package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"realty/config"
	"realty/infras/otel"
	"realty/infras/sendgrid"
	"realty/infras/twilio"
	"realty/internal/domains/notification/model"
	"realty/shared/constant"
	"realty/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const humanDateLayout = "Monday, 2 January 2006"

// Notification delivers visitor-facing messages. A returned error means the
// message was not delivered; callers decide whether that matters.
type Notification interface {
	SendConfirmation(ctx context.Context, details model.ViewingDetails) error
	SendReminder(ctx context.Context, details model.ViewingDetails) error
	SendCancellation(ctx context.Context, recipient, name, propertyTitle string, date time.Time) error
}

type serviceImpl struct {
	mailer sendgrid.Mailer
	sms    twilio.SMS
	cfg    *config.Config
	otel   otel.Otel
}

func New(mailer sendgrid.Mailer, sms twilio.SMS, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		mailer: mailer,
		sms:    sms,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) sender() string {
	if s.cfg.Notification.FromName != "" {
		return s.cfg.Notification.FromName
	}

	return s.cfg.App.Name
}

func (s *serviceImpl) SendConfirmation(ctx context.Context, details model.ViewingDetails) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("viewing.id", details.ViewingID)

	date := timezone.Format(details.ViewingDate, humanDateLayout)
	subject := fmt.Sprintf("Viewing confirmed: %s on %s at %s", details.Title(), date, details.ViewingTime)
	plain := fmt.Sprintf(
		"Hi %s,\n\nYour viewing of %s is booked for %s at %s (%d minutes).\n%s\nWe look forward to seeing you.",
		details.VisitorName, details.Title(), date, details.ViewingTime, details.Duration, addressLine(details.PropertyAddress),
	)

	html, err := s.render(emailContent{
		Heading:  "Your viewing is booked",
		Name:     details.VisitorName,
		Lead:     "Thanks for booking a viewing. Here are the details.",
		Property: details.Title(),
		Address:  details.PropertyAddress,
		Date:     date,
		Time:     details.ViewingTime,
		Duration: details.Duration,
		Closing:  "We look forward to seeing you.",
	})
	if err != nil {
		return err
	}

	if err = s.mailer.Send(ctx, sendgrid.Email{
		ToName:    details.VisitorName,
		ToAddress: details.VisitorEmail,
		Subject:   subject,
		PlainText: plain,
		HTML:      html,
	}); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// SendReminder emails the visitor and, when SMS is enabled and a phone number
// is on file, texts them too. Only the email decides the outcome.
func (s *serviceImpl) SendReminder(ctx context.Context, details model.ViewingDetails) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendReminder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("viewing.id", details.ViewingID)

	date := timezone.Format(details.ViewingDate, humanDateLayout)
	subject := fmt.Sprintf("Reminder: viewing of %s tomorrow at %s", details.Title(), details.ViewingTime)
	plain := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your viewing of %s on %s at %s.\n%s\nIf you can no longer attend, please let us know.",
		details.VisitorName, details.Title(), date, details.ViewingTime, addressLine(details.PropertyAddress),
	)

	html, err := s.render(emailContent{
		Heading:  "Your viewing is tomorrow",
		Name:     details.VisitorName,
		Lead:     "A quick reminder about your upcoming viewing.",
		Property: details.Title(),
		Address:  details.PropertyAddress,
		Date:     date,
		Time:     details.ViewingTime,
		Duration: details.Duration,
		Closing:  "If you can no longer attend, please let us know.",
	})
	if err != nil {
		return err
	}

	if err = s.mailer.Send(ctx, sendgrid.Email{
		ToName:    details.VisitorName,
		ToAddress: details.VisitorEmail,
		Subject:   subject,
		PlainText: plain,
		HTML:      html,
	}); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	if details.VisitorPhone != "" && s.sms.Enabled() {
		body := fmt.Sprintf("Reminder: viewing of %s on %s at %s.", details.Title(), date, details.ViewingTime)

		if smsErr := s.sms.Send(ctx, details.VisitorPhone, body); smsErr != nil {
			log.Warn().Err(smsErr).Str("viewingID", details.ViewingID).Msg("failed to send reminder sms")
		}
	}

	return nil
}

func (s *serviceImpl) SendCancellation(ctx context.Context, recipient, name, propertyTitle string, date time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendCancellation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	title := model.ViewingDetails{PropertyTitle: propertyTitle}.Title()
	day := timezone.Format(date, humanDateLayout)

	html, err := s.render(emailContent{
		Heading:  "Your viewing was cancelled",
		Name:     name,
		Lead:     "The viewing below has been cancelled.",
		Property: title,
		Date:     day,
		Closing:  "You are welcome to book another time.",
	})
	if err != nil {
		return err
	}

	if err = s.mailer.Send(ctx, sendgrid.Email{
		ToName:    name,
		ToAddress: recipient,
		Subject:   fmt.Sprintf("Viewing cancelled: %s on %s", title, day),
		PlainText: fmt.Sprintf("Hi %s,\n\nYour viewing of %s on %s has been cancelled.\nYou are welcome to book another time.", name, title, day),
		HTML:      html,
	}); err != nil {
		return fmt.Errorf("failed to send cancellation email: %w", err)
	}

	return nil
}

func (s *serviceImpl) render(content emailContent) (string, error) {
	content.Year = timezone.Now().Year()
	content.Sender = s.sender()

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, content); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}

	return buf.String(), nil
}

func addressLine(address string) string {
	if address == "" {
		return ""
	}

	return "Address: " + address + "\n"
}
