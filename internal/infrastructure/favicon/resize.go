package favicon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/bnema/webpageicon/internal/application/port"
	"github.com/bnema/webpageicon/internal/domain/entity"
)

const (
	// NormalizedIconSize is the standard size for launcher icons.
	NormalizedIconSize = 32
)

// Resize center-crops src to a square and scales it to size x size with
// CatmullRom interpolation. A non-positive size returns src unchanged.
func Resize(src image.Image, size int) image.Image {
	if size <= 0 || src == nil {
		return src
	}

	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	cropRect := srcBounds
	if srcW > srcH {
		offset := (srcW - srcH) / 2
		cropRect = image.Rect(srcBounds.Min.X+offset, srcBounds.Min.Y, srcBounds.Min.X+offset+srcH, srcBounds.Max.Y)
	} else if srcH > srcW {
		offset := (srcH - srcW) / 2
		cropRect = image.Rect(srcBounds.Min.X, srcBounds.Min.Y+offset, srcBounds.Max.X, srcBounds.Min.Y+offset+srcW)
	}

	cropped := cropImage(src, cropRect)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), draw.Over, nil)
	return dst
}

// ExportPNG writes icon as <dir>/<domain key without .ico>.png, resized when
// size is positive, and returns the written path.
func ExportPNG(codec port.ImageCodec, icon *entity.Icon, dir string, size int) (string, error) {
	if icon == nil || icon.Image == nil {
		return "", fmt.Errorf("export png: no image")
	}

	data, err := codec.Encode(Resize(icon.Image, size))
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, diskCacheDirPerm); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := pngName(icon.Key, size)
	path := filepath.Join(dir, name)
	if err := writeFileAtomic(dir, name, data); err != nil {
		return "", err
	}
	return path, nil
}

func pngName(key string, size int) string {
	base := key[:len(key)-len(filepath.Ext(key))]
	if size > 0 {
		return fmt.Sprintf("%s.%d.png", base, size)
	}
	return base + ".png"
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, src.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}
