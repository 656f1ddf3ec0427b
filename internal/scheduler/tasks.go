package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskWelcomeEmail = "email.welcome"

const TaskBookingConfirmationEmail = "email.booking_confirmation"

const TaskBookingStatusEmail = "email.booking_status"

type WelcomeEmailPayload struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
}

type BookingConfirmationPayload struct {
	BookingID      string  `json:"bookingId"`
	ContactName    string  `json:"contactName"`
	ContactEmail   string  `json:"contactEmail"`
	PackageName    string  `json:"packageName"`
	NumberOfPeople int     `json:"numberOfPeople"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status"`
}

type BookingStatusPayload struct {
	BookingID      string `json:"bookingId"`
	ContactName    string `json:"contactName"`
	ContactEmail   string `json:"contactEmail"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
}

func newTask(taskType string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, data), nil
}

func parsePayload[T any](task *asynq.Task) (T, error) {
	var payload T
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func NewWelcomeEmailTask(payload WelcomeEmailPayload) (*asynq.Task, error) {
	return newTask(TaskWelcomeEmail, payload)
}

func NewBookingConfirmationTask(payload BookingConfirmationPayload) (*asynq.Task, error) {
	return newTask(TaskBookingConfirmationEmail, payload)
}

func NewBookingStatusTask(payload BookingStatusPayload) (*asynq.Task, error) {
	return newTask(TaskBookingStatusEmail, payload)
}
