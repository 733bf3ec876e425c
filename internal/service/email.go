package service

import (
	"context"
	"fmt"
	"time"

	"forklift-rental-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

// NewEmailService returns a SendGrid-backed EmailService. With an empty
// API key every send becomes a logged no-op, which keeps local
// development working without credentials.
func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		logger.Debug("Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRentalApprovalNotification(ctx context.Context, to, name, equipmentName string, startDate, endDate time.Time) error {
	subject := fmt.Sprintf("Rental Approved: %s", equipmentName)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s from %s through %s has been approved.\n\nBest regards,\nThe Rentals Team",
		name, equipmentName, startDate.Format("Jan 2, 2006"), endDate.Format("Jan 2, 2006"))
	return s.send(to, name, subject, body)
}

func (s *emailService) SendRentalRejectionNotification(ctx context.Context, to, name, equipmentName, reason string) error {
	subject := fmt.Sprintf("Rental Request Update: %s", equipmentName)
	body := fmt.Sprintf("Hello %s,\n\nYour rental request for %s was not approved.\n\nReason: %s\n\nBest regards,\nThe Rentals Team",
		name, equipmentName, reason)
	return s.send(to, name, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, to, name, equipmentName string, endDate time.Time) error {
	subject := fmt.Sprintf("Return Reminder: %s", equipmentName)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s was due back on %s. Please arrange its return.\n\nBest regards,\nThe Rentals Team",
		name, equipmentName, endDate.Format("Jan 2, 2006"))
	return s.send(to, name, subject, body)
}
