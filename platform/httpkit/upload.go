package httpkit

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FormFile is an opened multipart file. Callers must Close it.
type FormFile struct {
	multipart.File
	Name        string
	ContentType string
	Size        int64
}

// OpenFormFile opens the multipart file under field. It returns (nil, nil)
// when the request carries no such file.
func OpenFormFile(c *gin.Context, field string) (*FormFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open form file %s: %w", field, err)
	}

	return &FormFile{
		File:        file,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}
