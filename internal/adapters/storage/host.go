package storage

import "context"

// NewAssetHost returns Cloudinary when CLOUDINARY_URL is set, otherwise MinIO.
// The MinIO bucket is created on demand by ensureBucket, which callers can
// wrap in their own retry loop.
func NewAssetHost(ctx context.Context, cfg Config, ensureBucket func(ctx context.Context, svc *MinIOService) error) (AssetHost, error) {
	if cfg.IsCloudinaryEnabled() {
		return NewCloudinaryService(cfg)
	}

	svc, err := NewMinIOService(cfg)
	if err != nil {
		return nil, err
	}
	if ensureBucket != nil {
		if err := ensureBucket(ctx, svc); err != nil {
			return nil, err
		}
	}
	return svc, nil
}
