// Package email renders and delivers transactional mail.
package email

import (
	"context"

	"travel_booking_backend/platform/config"
)

// BookingEmail describes a freshly created booking.
type BookingEmail struct {
	ContactName    string
	PackageName    string
	BookingID      string
	NumberOfPeople int
	TotalPrice     float64
	Status         string
}

// BookingStatusEmail describes a booking status change.
type BookingStatusEmail struct {
	ContactName    string
	BookingID      string
	PreviousStatus string
	Status         string
}

type Sender interface {
	SendWelcomeEmail(ctx context.Context, toEmail, userName string) error
	SendBookingConfirmationEmail(ctx context.Context, toEmail string, booking BookingEmail) error
	SendBookingStatusEmail(ctx context.Context, toEmail string, update BookingStatusEmail) error
}

type NoopSender struct{}

func (NoopSender) SendWelcomeEmail(context.Context, string, string) error { return nil }

func (NoopSender) SendBookingConfirmationEmail(context.Context, string, BookingEmail) error {
	return nil
}

func (NoopSender) SendBookingStatusEmail(context.Context, string, BookingStatusEmail) error {
	return nil
}

// NewSender returns an SMTP sender when email is enabled, otherwise a no-op.
func NewSender(cfg config.EmailConfig) Sender {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}
	}
	return NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}
