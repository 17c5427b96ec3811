package imgio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Info contains metadata about an encoded image.
type Info struct {
	Format     string // registered format name, e.g. "png"
	Width      int
	Height     int
	ColorModel string
}

// colorModelName returns a readable name for a decoded color model.
func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.NRGBAModel:
		return "NRGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	return "Unknown"
}

// Inspect reads image metadata from the encoded header without decoding
// pixel data.
func Inspect(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}

	return &Info{
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}
