package storage

import (
	"fmt"
	"mime"
	"strings"

	"travel_booking_backend/platform/apperr"
)

const (
	MsgImageRequired   = "Image is required"
	MsgOnlyImages      = "Only image files are allowed"
	DefaultMaxFileSize = 5 * 1024 * 1024
)

// ValidateImage checks that the upload is a non-empty image/* file no larger
// than maxSize bytes.
func ValidateImage(file Upload, maxSize int64) error {
	if !IsImageContentType(file.ContentType) {
		return apperr.BadRequest(MsgOnlyImages)
	}
	if file.Size <= 0 {
		return apperr.BadRequest(MsgImageRequired)
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if file.Size > maxSize {
		return apperr.BadRequest(fmt.Sprintf("Image must not exceed %d MB", maxSize/(1024*1024)))
	}
	return nil
}

// IsImageContentType checks if the content type is an image.
func IsImageContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.ToLower(strings.Split(contentType, ";")[0]))
	}
	return strings.HasPrefix(mediaType, "image/")
}
