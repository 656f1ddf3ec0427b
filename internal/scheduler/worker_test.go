package scheduler

import (
	"context"
	"errors"
	"testing"

	"travel_booking_backend/internal/email"
	"travel_booking_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type recordingSender struct {
	welcome       []string
	confirmations []email.BookingEmail
	statuses      []email.BookingStatusEmail
	err           error
}

func (s *recordingSender) SendWelcomeEmail(_ context.Context, toEmail, _ string) error {
	s.welcome = append(s.welcome, toEmail)
	return s.err
}

func (s *recordingSender) SendBookingConfirmationEmail(_ context.Context, _ string, booking email.BookingEmail) error {
	s.confirmations = append(s.confirmations, booking)
	return s.err
}

func (s *recordingSender) SendBookingStatusEmail(_ context.Context, _ string, update email.BookingStatusEmail) error {
	s.statuses = append(s.statuses, update)
	return s.err
}

func newTestWorker(sender email.Sender) *Worker {
	w := &Worker{mux: asynq.NewServeMux(), sender: sender, log: logger.Nop()}
	w.register()
	return w
}

func TestWorkerSendsBookingConfirmation(t *testing.T) {
	sender := &recordingSender{}
	w := newTestWorker(sender)

	task, err := NewBookingConfirmationTask(BookingConfirmationPayload{
		BookingID:    "b-1",
		ContactEmail: "alice@example.com",
		PackageName:  "City Break",
		TotalPrice:   99,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.confirmations) != 1 || sender.confirmations[0].PackageName != "City Break" {
		t.Fatalf("unexpected confirmations %+v", sender.confirmations)
	}
}

func TestWorkerRetriesOnSendFailure(t *testing.T) {
	w := newTestWorker(&recordingSender{err: errors.New("smtp down")})

	task, _ := NewWelcomeEmailTask(WelcomeEmailPayload{Email: "a@example.com"})
	if err := w.mux.ProcessTask(context.Background(), task); err == nil {
		t.Fatal("expected error so the task is retried")
	}
}

func TestWorkerSkipsRetryForBadPayload(t *testing.T) {
	w := newTestWorker(&recordingSender{})

	err := w.mux.ProcessTask(context.Background(), asynq.NewTask(TaskBookingStatusEmail, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}
