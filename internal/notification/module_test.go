package notification

import (
	"context"
	"testing"

	"travel_booking_backend/internal/email"
	"travel_booking_backend/internal/events"
	"travel_booking_backend/internal/scheduler"
	"travel_booking_backend/platform/logger"

	"github.com/google/uuid"
)

type testQueue struct {
	welcome       []scheduler.WelcomeEmailPayload
	confirmations []scheduler.BookingConfirmationPayload
	statuses      []scheduler.BookingStatusPayload
}

func (q *testQueue) EnqueueWelcomeEmail(_ context.Context, p scheduler.WelcomeEmailPayload) error {
	q.welcome = append(q.welcome, p)
	return nil
}

func (q *testQueue) EnqueueBookingConfirmation(_ context.Context, p scheduler.BookingConfirmationPayload) error {
	q.confirmations = append(q.confirmations, p)
	return nil
}

func (q *testQueue) EnqueueBookingStatus(_ context.Context, p scheduler.BookingStatusPayload) error {
	q.statuses = append(q.statuses, p)
	return nil
}

type testSender struct {
	welcomeCalls      int
	confirmationCalls int
	statusCalls       int
}

func (s *testSender) SendWelcomeEmail(context.Context, string, string) error {
	s.welcomeCalls++
	return nil
}

func (s *testSender) SendBookingConfirmationEmail(context.Context, string, email.BookingEmail) error {
	s.confirmationCalls++
	return nil
}

func (s *testSender) SendBookingStatusEmail(context.Context, string, email.BookingStatusEmail) error {
	s.statusCalls++
	return nil
}

func bookingCreated() events.BookingCreated {
	return events.BookingCreated{
		BaseEvent:    events.NewBaseEvent(),
		BookingID:    uuid.New(),
		PackageName:  "City Break",
		ContactName:  "Alice",
		ContactEmail: "alice@example.com",
		Status:       "pending",
	}
}

func TestBookingCreatedIsQueued(t *testing.T) {
	queue := &testQueue{}
	sender := &testSender{}
	m := New(queue, sender, logger.Nop())

	e := bookingCreated()
	if err := m.Handle(context.Background(), e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.confirmations) != 1 || queue.confirmations[0].BookingID != e.BookingID.String() {
		t.Fatalf("expected queued confirmation, got %+v", queue.confirmations)
	}
	if sender.confirmationCalls != 0 {
		t.Fatal("queued mail must not be sent inline")
	}
}

func TestWithoutQueueMailIsSentInline(t *testing.T) {
	sender := &testSender{}
	m := New(nil, sender, logger.Nop())

	if err := m.Handle(context.Background(), bookingCreated()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Handle(context.Background(), events.UserRegistered{Email: "a@example.com", UserName: "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.confirmationCalls != 1 || sender.welcomeCalls != 1 {
		t.Fatalf("expected inline sends, got %+v", sender)
	}
}

func TestStatusChangeWithoutEmailIsSkipped(t *testing.T) {
	queue := &testQueue{}
	m := New(queue, nil, logger.Nop())

	if err := m.Handle(context.Background(), events.BookingStatusChanged{Status: "confirmed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.statuses) != 0 {
		t.Fatal("nothing to send without a contact email")
	}
}

func TestRegisterHandlersSubscribesToBus(t *testing.T) {
	bus := events.NewInMemoryBus(logger.Nop())
	queue := &testQueue{}
	m := New(queue, nil, logger.Nop())
	m.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), bookingCreated()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.confirmations) != 1 {
		t.Fatal("bus did not reach the notification module")
	}
}
