package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"

	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/bnema/webpageicon/internal/application/port"
)

// ErrEmptyImage is returned when decoding zero bytes.
var ErrEmptyImage = errors.New("empty image data")

// Codec decodes favicon bytes with the registered image formats and falls
// back to the ICO decoder. It implements port.ImageCodec.
type Codec struct{}

// NewCodec creates a Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode returns the decoded image and the name of the format that decoded it.
func (c *Codec) Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, format, nil
	}

	// DuckDuckGo serves .ico containers; not every build registers them.
	icoImg, icoErr := ico.Decode(bytes.NewReader(data))
	if icoErr == nil {
		return icoImg, "ico", nil
	}

	return nil, "", fmt.Errorf("decode image: %w", errors.Join(err, icoErr))
}

// Encode serializes img as PNG.
func (c *Codec) Encode(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("encode png: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

var _ port.ImageCodec = (*Codec)(nil)
