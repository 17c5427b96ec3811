package pipeline

import (
	"fmt"
	"os"

	"github.com/pstwh/img2pdf/internal/imgio"
	"github.com/pstwh/img2pdf/internal/pdf"
	"github.com/pstwh/img2pdf/internal/raster"
)

// Result holds the output of a conversion.
type Result struct {
	Data   []byte // complete PDF file
	Width  int    // source image width in pixels
	Height int    // source image height in pixels
}

// Convert executes the full image→PDF pipeline: decode → separate channels →
// assemble. Every step is all-or-nothing; on error no output bytes are
// produced.
func Convert(imgData []byte) (*Result, error) {
	// 1. Decode to interleaved RGBA
	img, err := imgio.Decode(imgData)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Split into RGB and alpha planes
	channels := raster.Separate(img)

	// 3. Compress and assemble the document
	data, err := pdf.Assemble(img.Width, img.Height, channels.RGB, channels.Alpha)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	return &Result{
		Data:   data,
		Width:  img.Width,
		Height: img.Height,
	}, nil
}

// ConvertFile converts the image at inputPath and writes the PDF to
// outputPath, creating or truncating it.
func ConvertFile(inputPath, outputPath string) error {
	imgData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	result, err := Convert(imgData)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
