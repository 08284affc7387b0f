package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/templui/aura/internal/model"
)

// EmailService sends reminder emails through Resend. In development, or
// without a recipient, emails are only logged.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	isDev     bool
	appName   string
}

func NewEmailService(apiKey, fromEmail, toEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		isDev:     isDev,
		appName:   appName,
	}
}

func (s *EmailService) NotifyReminder(ctx context.Context, reminder model.Reminder) error {
	if s.toEmail == "" {
		return nil
	}

	subject, body := reminderEmailTemplate(reminder.Message, reminder.GoalText, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "reminder", "to", s.toEmail, "subject", subject, "reminder_id", reminder.ID)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "reminder", "to", s.toEmail, "reminder_id", reminder.ID)
	}
	return err
}
