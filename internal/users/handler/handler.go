package handler

import (
	"net/http"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/users/service"
	"travel_booking_backend/internal/users/transport"
	"travel_booking_backend/platform/httpkit"
	"travel_booking_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for users.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest = "Invalid request body"
	msgInvalidQuery   = "Invalid query parameters"
	msgInvalidID      = "Invalid user id"
)

// New creates a new users handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List returns a page of users.
// GET /api/v1/users
func (h *Handler) List(c *gin.Context) {
	var req transport.ListUsersRequest
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

// Get returns one user.
// GET /api/v1/users/:id
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

// Create adds a user.
// POST /api/v1/users
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateUserRequest
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
	httpkit.Created(c, "User created successfully", result)
}

// Update edits a user.
// PATCH /api/v1/users/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdateUserRequest
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
	httpkit.OK(c, "User updated successfully", result)
}

// Delete soft-deletes a user.
// DELETE /api/v1/users/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}
	caller, ok := access.CallerFrom(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), caller, id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "User deleted successfully", nil)
}
