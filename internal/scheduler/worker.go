package scheduler

import (
	"context"
	"fmt"

	"travel_booking_backend/internal/email"
	"travel_booking_backend/platform/config"
	"travel_booking_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	sender email.Sender
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	w := &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
		sender: sender,
		log:    log,
	}
	w.register()

	return w, nil
}

func (w *Worker) register() {
	w.mux.HandleFunc(TaskWelcomeEmail, w.handleWelcomeEmail)
	w.mux.HandleFunc(TaskBookingConfirmationEmail, w.handleBookingConfirmation)
	w.mux.HandleFunc(TaskBookingStatusEmail, w.handleBookingStatus)
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleWelcomeEmail(ctx context.Context, task *asynq.Task) error {
	payload, err := parsePayload[WelcomeEmailPayload](task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if err := w.sender.SendWelcomeEmail(ctx, payload.Email, payload.UserName); err != nil {
		return err
	}
	w.log.Info("welcome email sent", "email", payload.Email)
	return nil
}

func (w *Worker) handleBookingConfirmation(ctx context.Context, task *asynq.Task) error {
	payload, err := parsePayload[BookingConfirmationPayload](task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if payload.ContactEmail == "" {
		return nil
	}

	err = w.sender.SendBookingConfirmationEmail(ctx, payload.ContactEmail, email.BookingEmail{
		ContactName:    payload.ContactName,
		PackageName:    payload.PackageName,
		BookingID:      payload.BookingID,
		NumberOfPeople: payload.NumberOfPeople,
		TotalPrice:     payload.TotalPrice,
		Status:         payload.Status,
	})
	if err != nil {
		return err
	}
	w.log.Info("booking confirmation sent", "bookingId", payload.BookingID)
	return nil
}

func (w *Worker) handleBookingStatus(ctx context.Context, task *asynq.Task) error {
	payload, err := parsePayload[BookingStatusPayload](task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	if payload.ContactEmail == "" {
		return nil
	}

	err = w.sender.SendBookingStatusEmail(ctx, payload.ContactEmail, email.BookingStatusEmail{
		ContactName:    payload.ContactName,
		BookingID:      payload.BookingID,
		PreviousStatus: payload.PreviousStatus,
		Status:         payload.Status,
	})
	if err != nil {
		return err
	}
	w.log.Info("booking status email sent", "bookingId", payload.BookingID, "status", payload.Status)
	return nil
}
