package imgio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNGWithAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	img, err := Decode(encodePNG(t, src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if img.Width != 2 || img.Height != 1 {
		t.Errorf("dimensions = %dx%d, want 2x1", img.Width, img.Height)
	}
	want := []byte{10, 20, 30, 255, 40, 50, 60, 128}
	if !bytes.Equal(img.Pixels, want) {
		t.Errorf("pixels = %v, want %v", img.Pixels, want)
	}
}

func TestDecodeNormalizesSubimageBounds(t *testing.T) {
	// A decoded image whose bounds do not start at the origin must still
	// come back as a dense buffer in scan order.
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: byte(x * 60), G: byte(y * 60), B: 7, A: 255})
		}
	}
	sub := src.SubImage(image.Rect(1, 1, 3, 3)).(*image.NRGBA)

	img, err := Decode(encodePNG(t, sub))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", img.Width, img.Height)
	}
	if len(img.Pixels) != 2*2*4 {
		t.Fatalf("pixel buffer = %d bytes, want %d", len(img.Pixels), 2*2*4)
	}
	if img.Pixels[0] != 60 || img.Pixels[1] != 60 {
		t.Errorf("first pixel = %v, want R=60 G=60", img.Pixels[:4])
	}
}

func TestDecodeJPEGIsOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 11)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, nil); err != nil {
		t.Fatalf("encoding test JPEG: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 3 || img.Height != 3 {
		t.Errorf("dimensions = %dx%d, want 3x3", img.Width, img.Height)
	}
	for i := 3; i < len(img.Pixels); i += 4 {
		if img.Pixels[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255 for JPEG input", i/4, img.Pixels[i])
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := map[string][]byte{
		"empty":     nil,
		"garbage":   []byte("not an image at all"),
		"truncated": encodePNG(t, image.NewNRGBA(image.Rect(0, 0, 8, 8)))[:20],
	}
	for name, data := range cases {
		if _, err := Decode(data); err == nil {
			t.Errorf("%s input: expected decode error, got nil", name)
		}
	}
}

func TestInspect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	info, err := Inspect(encodePNG(t, src))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if info.Format != "png" {
		t.Errorf("format = %q, want png", info.Format)
	}
	if info.Width != 7 || info.Height != 5 {
		t.Errorf("dimensions = %dx%d, want 7x5", info.Width, info.Height)
	}
	if info.ColorModel != "NRGBA" {
		t.Errorf("color model = %q, want NRGBA", info.ColorModel)
	}

	if _, err := Inspect([]byte("bogus")); err == nil {
		t.Error("expected header error for bogus input")
	}
}
