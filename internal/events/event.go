// Package events defines the travel domain events. The bus itself lives in
// platform/events; its types are aliased here so modules need one import.
package events

import (
	"travel_booking_backend/platform/events"
	"travel_booking_backend/platform/logger"

	"github.com/google/uuid"
)

type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates the process-wide bus with its own log component.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log.Component("events"))
}

// =============================================================================
// Auth Domain Events
// =============================================================================

// UserRegistered is published when a new account signs up.
type UserRegistered struct {
	BaseEvent
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email"`
	UserName string    `json:"userName"`
}

func (e UserRegistered) EventName() string { return "auth.user.registered" }

// =============================================================================
// Booking Domain Events
// =============================================================================

// BookingCreated is published after a booking and its contact are committed.
type BookingCreated struct {
	BaseEvent
	BookingID      uuid.UUID `json:"bookingId"`
	UserID         uuid.UUID `json:"userId"`
	PackageID      uuid.UUID `json:"packageId"`
	PackageName    string    `json:"packageName"`
	ContactName    string    `json:"contactName"`
	ContactEmail   string    `json:"contactEmail"`
	NumberOfPeople int       `json:"numberOfPeople"`
	TotalPrice     float64   `json:"totalPrice"`
	Status         string    `json:"status"`
}

func (e BookingCreated) EventName() string { return "bookings.booking.created" }

// BookingStatusChanged is published when an update moves a booking to a
// different status.
type BookingStatusChanged struct {
	BaseEvent
	BookingID      uuid.UUID `json:"bookingId"`
	UserID         uuid.UUID `json:"userId"`
	ContactName    string    `json:"contactName"`
	ContactEmail   string    `json:"contactEmail"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
}

func (e BookingStatusChanged) EventName() string { return "bookings.booking.status_changed" }
