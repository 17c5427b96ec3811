package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pstwh/img2pdf/internal/raster"
)

// Decode decodes an encoded image (JPEG, PNG, GIF, BMP, TIFF or WebP) and
// normalizes it to 8-bit non-premultiplied RGBA in row-major scan order.
func Decode(data []byte) (*raster.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%s image has zero dimension (%dx%d)", format, width, height)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != width*4 || !bounds.Min.Eq(image.Point{}) {
		converted := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(converted, converted.Bounds(), img, bounds.Min, draw.Src)
		nrgba = converted
	}

	return &raster.Image{
		Width:  width,
		Height: height,
		Pixels: nrgba.Pix,
	}, nil
}
