// Package storage provides the image asset hosts used by the catalog.
// Two implementations exist: MinIO (S3-compatible object storage) and
// Cloudinary. Both return a public URL plus an id used for later deletion.
package storage

import (
	"context"
	"io"
)

// Folders used by the catalog modules.
const (
	FolderDestinations = "destinations"
	FolderPackages     = "packages"
)

// Asset is a stored image.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Upload is an image to be stored.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// AssetHost stores and removes images on a remote host.
type AssetHost interface {
	// Upload stores the file under folder and returns its public location.
	Upload(ctx context.Context, folder string, file Upload) (Asset, error)
	// Delete removes a previously uploaded asset.
	Delete(ctx context.Context, publicID string) error
}

// Config selects and configures an asset host.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOBucket() string
	GetAssetPublicBaseURL() string
	IsMinIOEnabled() bool
	GetCloudinaryURL() string
	IsCloudinaryEnabled() bool
}
