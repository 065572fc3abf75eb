package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Asset is what the rest of the system consumes from an upload: a
// serving URL plus the media duration in seconds when the backend
// reports one (zero otherwise).
type Asset struct {
	URL      string
	Duration float64
}

// AssetStore is the upload collaborator. Handlers only ever touch this
// boundary, never the SDK directly.
type AssetStore interface {
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (Asset, error)
}

// CloudinaryStore uploads assets to Cloudinary, configured through
// CLOUDINARY_URL.
type CloudinaryStore struct{}

func (CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder, publicID string) (Asset, error) {
	cld, err := cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary configuration: %w", err)
	}

	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return Asset{}, err
	}

	return Asset{URL: result.SecureURL}, nil
}

// assetStore is swapped out in tests.
var assetStore AssetStore = CloudinaryStore{}
