package service

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v3"

	"moonwise/internal/config"
	"moonwise/internal/domain"
)

// PhaseNotifier delivers a scheduled phase notification to a user. Delivery
// transport is a collaborator of the sweep, not part of its logic; failures
// are reported per record and never abort a sweep.
type PhaseNotifier interface {
	SendPhaseAlert(ctx context.Context, toEmail string, notif domain.PhaseNotification) error
}

type emailNotifier struct {
	client *resend.Client
	config *config.Config
}

// NewEmailNotifier sends phase alerts by email through Resend. Records
// without an alert address are logged instead of erroring, so users who
// never configured one do not pile up unsent notifications.
func NewEmailNotifier(cfg *config.Config) PhaseNotifier {
	return &emailNotifier{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

func (s *emailNotifier) SendPhaseAlert(ctx context.Context, toEmail string, notif domain.PhaseNotification) error {
	msg := domain.MessageForPhase(notif.PhaseType)

	if toEmail == "" {
		log.Printf("phase alert (no email on file): %s on %s for user %s",
			notif.PhaseType, notif.PhaseDay(), notif.UserID)
		return nil
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>%s</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb;">

	<div style="background: linear-gradient(135deg, #312e81 0%%, #6d28d9 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="color: #ffffff; margin: 0; font-size: 28px;">
			Moonwise
		</h1>
	</div>

	<div style="background-color: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">
		<h2 style="color: #111827; margin-top: 0;">%s</h2>
		<p>%s</p>
		<p style="color: #6b7280; font-size: 14px;">
			The %s occurs on %s.
		</p>
	</div>

</body>
</html>`, msg.Title, msg.Title, msg.Body, notif.PhaseType, notif.PhaseDate.Format("Jan 2, 2006"))

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Moonwise <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: msg.Title,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

type logNotifier struct{}

// NewLogNotifier is the delivery fallback when no Resend key is configured:
// alerts go to the server log and count as delivered.
func NewLogNotifier() PhaseNotifier {
	return logNotifier{}
}

func (logNotifier) SendPhaseAlert(ctx context.Context, toEmail string, notif domain.PhaseNotification) error {
	log.Printf("🌙 notification: %s occurring on %s", notif.PhaseType, notif.PhaseDate.Format("Jan 2, 2006"))
	return nil
}
