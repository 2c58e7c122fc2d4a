// Package entity contains the favicon domain types.
package entity

import "image"

// Icon is a resolved website favicon.
type Icon struct {
	// Domain is the website identifier the icon was resolved for.
	Domain string
	// Key is the sanitized cache key (also the on-disk file name).
	Key string
	// Data holds the raw bytes as served by the icon provider.
	Data []byte
	// Image is the decoded form of Data.
	Image image.Image
	// Format is the decoder name that produced Image (png, ico, ...).
	Format string
}

// Size returns the pixel dimensions of the decoded image.
func (i *Icon) Size() (width, height int) {
	if i == nil || i.Image == nil {
		return 0, 0
	}
	b := i.Image.Bounds()
	return b.Dx(), b.Dy()
}
