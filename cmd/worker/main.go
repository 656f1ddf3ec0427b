package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"travel_booking_backend/internal/email"
	"travel_booking_backend/internal/scheduler"
	"travel_booking_backend/platform/config"
	"travel_booking_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting email worker", "env", cfg.Env, "queue", cfg.GetAsynqQueueName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender := email.NewSender(cfg)
	if !cfg.GetEmailEnabled() {
		log.Warn("email delivery disabled; queued emails will be dropped")
	}

	worker, err := scheduler.NewWorker(cfg, sender, log.Component("scheduler"))
	if err != nil {
		log.Error("failed to initialize email worker", "error", err)
		panic("failed to initialize email worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("email worker stopped")
}
