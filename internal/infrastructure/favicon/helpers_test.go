package favicon

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

// testICO wraps a PNG payload in a single-entry ICO container.
func testICO(t *testing.T, size int) []byte {
	t.Helper()
	payload := testPNG(t, size, size)

	var buf bytes.Buffer
	// ICONDIR: reserved, type (1 = icon), count
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1}))
	// ICONDIRENTRY
	buf.WriteByte(byte(size))
	buf.WriteByte(byte(size))
	buf.WriteByte(0) // palette size
	buf.WriteByte(0) // reserved
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1)))  // planes
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(32))) // bpp
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(len(payload))))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(6+16)))
	buf.Write(payload)
	return buf.Bytes()
}
