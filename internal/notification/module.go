// Package notification turns domain events into transactional email.
// Domain modules publish events and never talk to mail providers directly.
package notification

import (
	"context"

	"travel_booking_backend/internal/email"
	"travel_booking_backend/internal/events"
	"travel_booking_backend/internal/scheduler"
	"travel_booking_backend/platform/logger"
)

// Module subscribes to domain events. When a task queue is configured the
// mail is queued for the worker process; otherwise it is sent inline.
type Module struct {
	queue  scheduler.EmailScheduler
	sender email.Sender
	log    *logger.Logger
}

// New creates the notification module. queue may be nil.
func New(queue scheduler.EmailScheduler, sender email.Sender, log *logger.Logger) *Module {
	if sender == nil {
		sender = email.NoopSender{}
	}
	return &Module{queue: queue, sender: sender, log: log}
}

// RegisterHandlers subscribes the module to the events it handles.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.UserRegistered{}.EventName(), m)
	bus.Subscribe(events.BookingCreated{}.EventName(), m)
	bus.Subscribe(events.BookingStatusChanged{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.UserRegistered:
		return m.handleUserRegistered(ctx, e)
	case events.BookingCreated:
		return m.handleBookingCreated(ctx, e)
	case events.BookingStatusChanged:
		return m.handleBookingStatusChanged(ctx, e)
	default:
		m.log.Warn("unhandled event type", "event", event.EventName())
		return nil
	}
}

func (m *Module) handleUserRegistered(ctx context.Context, e events.UserRegistered) error {
	if m.queue != nil {
		return m.queue.EnqueueWelcomeEmail(ctx, scheduler.WelcomeEmailPayload{
			Email:    e.Email,
			UserName: e.UserName,
		})
	}
	return m.sender.SendWelcomeEmail(ctx, e.Email, e.UserName)
}

func (m *Module) handleBookingCreated(ctx context.Context, e events.BookingCreated) error {
	if e.ContactEmail == "" {
		return nil
	}
	if m.queue != nil {
		return m.queue.EnqueueBookingConfirmation(ctx, scheduler.BookingConfirmationPayload{
			BookingID:      e.BookingID.String(),
			ContactName:    e.ContactName,
			ContactEmail:   e.ContactEmail,
			PackageName:    e.PackageName,
			NumberOfPeople: e.NumberOfPeople,
			TotalPrice:     e.TotalPrice,
			Status:         e.Status,
		})
	}
	return m.sender.SendBookingConfirmationEmail(ctx, e.ContactEmail, email.BookingEmail{
		ContactName:    e.ContactName,
		PackageName:    e.PackageName,
		BookingID:      e.BookingID.String(),
		NumberOfPeople: e.NumberOfPeople,
		TotalPrice:     e.TotalPrice,
		Status:         e.Status,
	})
}

func (m *Module) handleBookingStatusChanged(ctx context.Context, e events.BookingStatusChanged) error {
	if e.ContactEmail == "" {
		return nil
	}
	if m.queue != nil {
		return m.queue.EnqueueBookingStatus(ctx, scheduler.BookingStatusPayload{
			BookingID:      e.BookingID.String(),
			ContactName:    e.ContactName,
			ContactEmail:   e.ContactEmail,
			PreviousStatus: e.PreviousStatus,
			Status:         e.Status,
		})
	}
	return m.sender.SendBookingStatusEmail(ctx, e.ContactEmail, email.BookingStatusEmail{
		ContactName:    e.ContactName,
		BookingID:      e.BookingID.String(),
		PreviousStatus: e.PreviousStatus,
		Status:         e.Status,
	})
}
