package handler

import (
	"net/http"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/bookings/service"
	"travel_booking_backend/internal/bookings/transport"
	"travel_booking_backend/platform/httpkit"
	"travel_booking_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for bookings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest = "Invalid request body"
	msgInvalidQuery   = "Invalid query parameters"
	msgInvalidID      = "Invalid booking id"
)

// New creates a new bookings handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List returns a page of bookings.
// GET /api/v1/bookings
func (h *Handler) List(c *gin.Context) {
	var req transport.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidQuery, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}
	caller, ok := access.CallerFrom(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), caller, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Paginated(c, result.Items, result.Meta)
}

// Get returns one booking.
// GET /api/v1/bookings/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}
	caller, ok := access.CallerFrom(c)
	if !ok {
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), caller, id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "", result)
}

// Create books a package for the caller.
// POST /api/v1/bookings
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}
	caller, ok := access.CallerFrom(c)
	if !ok {
		return
	}

	result, err := h.svc.Create(c.Request.Context(), caller, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "Booking created successfully", result)
}

// Update edits a booking.
// PATCH /api/v1/bookings/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}
	caller, ok := access.CallerFrom(c)
	if !ok {
		return
	}

	result, err := h.svc.Update(c.Request.Context(), caller, id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "Booking updated successfully", result)
}

// Delete removes a booking. Admin only.
// DELETE /api/v1/bookings/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "Booking deleted successfully", nil)
}
