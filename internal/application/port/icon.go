package port

import (
	"context"
	"image"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

// IconStore is the persistent key to bytes tier.
// Read reports absence for any failure; Write is best-effort.
type IconStore interface {
	Read(key string) ([]byte, bool)
	Write(key string, data []byte)
}

// IconFetcher retrieves and decodes an icon from the remote provider.
// It has no cache side effects. Errors are *entity.IconError values.
type IconFetcher interface {
	Fetch(ctx context.Context, domain string) (*entity.Icon, error)
}

// ImageCodec converts between raw icon bytes and decoded images.
type ImageCodec interface {
	// Decode returns the image and the name of the format that decoded it.
	Decode(data []byte) (image.Image, string, error)
	// Encode serializes an image (PNG).
	Encode(img image.Image) ([]byte, error)
}
