package handler

import (
	"net/http"

	"travel_booking_backend/internal/adapters/storage"
	"travel_booking_backend/internal/packages/service"
	"travel_booking_backend/internal/packages/transport"
	"travel_booking_backend/platform/httpkit"
	"travel_booking_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for packages.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest = "Invalid request body"
	msgInvalidQuery   = "Invalid query parameters"
	msgInvalidID      = "Invalid package id"
	imageField        = "image"
)

// New creates a new packages handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// List returns a page of packages for one destination.
// GET /api/v1/packages?destinationId=
func (h *Handler) List(c *gin.Context) {
	var req transport.ListPackagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidQuery, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}

	result, err := h.svc.ListByDestination(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Paginated(c, result.Items, result.Meta)
}

// Get returns one package.
// GET /api/v1/packages/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "", result)
}

// Create adds a package from a multipart form.
// POST /api/v1/packages
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreatePackageRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}

	image, err := openImage(c)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if image != nil {
		defer image.Close()
	}

	result, err := h.svc.Create(c.Request.Context(), req, toUpload(image))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, "Package created successfully", result)
}

// Update edits a package. The image part is optional.
// PATCH /api/v1/packages/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	var req transport.UpdatePackageRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.ValidationFailed(c, err)
		return
	}

	image, err := openImage(c)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if image != nil {
		defer image.Close()
	}

	result, err := h.svc.Update(c.Request.Context(), id, req, toUpload(image))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "Package updated successfully", result)
}

// Delete soft-deletes a package.
// DELETE /api/v1/packages/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, "Package deleted successfully", nil)
}

func openImage(c *gin.Context) (*httpkit.FormFile, error) {
	return httpkit.OpenFormFile(c, imageField)
}

func toUpload(f *httpkit.FormFile) *storage.Upload {
	if f == nil {
		return nil
	}
	return &storage.Upload{
		FileName:    f.Name,
		ContentType: f.ContentType,
		Size:        f.Size,
		Reader:      f,
	}
}
