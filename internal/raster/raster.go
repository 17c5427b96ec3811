package raster

// Image is the intermediate representation passed between the decoder and
// the channel separator. Pixels are stored as interleaved R,G,B,A bytes
// (4 bytes per pixel, non-premultiplied, row-major order).
type Image struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 4
}

// ChannelSet holds the separated color and opacity planes of an image.
// The i-th Alpha byte belongs to the same pixel as the i-th RGB triplet.
type ChannelSet struct {
	RGB   []byte // len = Width * Height * 3
	Alpha []byte // len = Width * Height
}

// Separate splits interleaved RGBA pixels into an RGB plane and an alpha
// plane, preserving scan order. Opaque sources still yield a full 0xFF
// alpha plane; the assembler always emits a soft mask.
func Separate(img *Image) ChannelSet {
	n := len(img.Pixels) / 4
	rgb := make([]byte, 0, n*3)
	alpha := make([]byte, 0, n)

	for i := 0; i < len(img.Pixels); i += 4 {
		rgb = append(rgb, img.Pixels[i], img.Pixels[i+1], img.Pixels[i+2])
		alpha = append(alpha, img.Pixels[i+3])
	}

	return ChannelSet{RGB: rgb, Alpha: alpha}
}

// Opaque reports whether every pixel in the set is fully opaque.
func (c ChannelSet) Opaque() bool {
	for _, a := range c.Alpha {
		if a != 0xFF {
			return false
		}
	}
	return true
}
