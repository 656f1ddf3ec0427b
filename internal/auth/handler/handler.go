package handler

import (
	"net/http"

	"travel_booking_backend/internal/access"
	"travel_booking_backend/internal/auth/service"
	"travel_booking_backend/internal/auth/transport"
	"travel_booking_backend/platform/httpkit"
	"travel_booking_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const msgInvalidRequest = "Invalid request body"

// New creates a new auth handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

// Register creates a new account.
// POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}

	result, err := h.svc.Register(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "User registered successfully", result)
}

// Login exchanges credentials for a token.
// POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "Login successful", result)
}

// Me returns the caller's profile.
// GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	caller, ok := access.CallerFrom(c)
	if !ok {
		return
	}

	result, err := h.svc.Me(c.Request.Context(), caller.ID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "", result)
}
