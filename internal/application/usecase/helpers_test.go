package usecase

import (
	"bytes"
	"errors"
	"image"
	"image/color"

	"github.com/bnema/webpageicon/internal/domain/entity"
)

// stubCodec decodes any payload starting with "IMG" into a 1x1 image whose
// pixel encodes the payload length, and rejects everything else.
type stubCodec struct{}

func (stubCodec) Decode(data []byte) (image.Image, string, error) {
	if !bytes.HasPrefix(data, []byte("IMG")) {
		return nil, "", errors.New("not an image")
	}
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: uint8(len(data))})
	return img, "stub", nil
}

func (stubCodec) Encode(image.Image) ([]byte, error) {
	return []byte("IMG"), nil
}

func testIcon(domain string, data string) *entity.Icon {
	img, format, _ := stubCodec{}.Decode([]byte(data))
	return &entity.Icon{Domain: domain, Data: []byte(data), Image: img, Format: format}
}
