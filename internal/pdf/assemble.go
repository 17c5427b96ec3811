// Package pdf assembles a minimal single-page PDF 1.4 document embedding
// one RGB image with a grayscale soft mask.
package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// Object numbers are fixed by the document layout: there is always exactly
// one image, its soft mask, one content stream and one page. The xref table
// indexes entries by these numbers, so the mapping is declared once here
// rather than scattered as literals through the assembler.
const (
	objPages   = 1
	objImage   = 2
	objMask    = 3
	objPage    = 4
	objContent = 5
	objCatalog = 6

	objCount = 7 // numbers 0 (free-list head) through 6
)

// assembler accumulates the document bytes plus the byte offset at which
// each numbered object begins. Offsets are recorded as each object emission
// starts; the xref section is generated from the table afterwards.
type assembler struct {
	buf     bytes.Buffer
	offsets [objCount]int
}

// beginObject records the current buffer position as the start of object id
// and emits its "<id> 0 obj" header line.
func (a *assembler) beginObject(id int) {
	a.offsets[id] = a.buf.Len()
	fmt.Fprintf(&a.buf, "%d 0 obj\n", id)
}

// writeStream emits a stream body and closes the object. The payload is
// written verbatim between the stream keywords; compressed data is binary
// and must not be re-encoded.
func (a *assembler) writeStream(payload []byte) {
	a.buf.WriteString("stream\n")
	a.buf.Write(payload)
	a.buf.WriteString("endstream\nendobj\n")
}

// writeXref emits the classical cross-reference table and trailer. Each
// entry is the fixed-width form "<10-digit offset> <5-digit generation> n"
// with a trailing space, one entry per object number in ascending order.
func (a *assembler) writeXref() {
	xrefStart := a.buf.Len()

	a.buf.WriteString("xref\n")
	fmt.Fprintf(&a.buf, "0 %d\n", objCount)
	a.buf.WriteString("0000000000 65535 f \n")
	for id := 1; id < objCount; id++ {
		fmt.Fprintf(&a.buf, "%010d 00000 n \n", a.offsets[id])
	}

	fmt.Fprintf(&a.buf, "trailer\n<< /Size %d /Root %d 0 R >>\n", objCount, objCatalog)
	fmt.Fprintf(&a.buf, "startxref\n%d\n", xrefStart)
	a.buf.WriteString("%%EOF\n")
}

// deflate compresses data as a zlib stream at best compression, the form
// PDF's /FlateDecode filter expects.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Assemble builds a complete PDF file embedding the given RGB plane as an
// image XObject and the alpha plane as its grayscale soft mask, placed on a
// single page whose MediaBox equals the pixel dimensions. rgb must hold
// width*height RGB triplets and alpha one byte per pixel, in the same scan
// order. The returned buffer is the whole file; on error no partial output
// is usable.
func Assemble(width, height int, rgb, alpha []byte) ([]byte, error) {
	rgbData, err := deflate(rgb)
	if err != nil {
		return nil, fmt.Errorf("compressing RGB stream: %w", err)
	}
	maskData, err := deflate(alpha)
	if err != nil {
		return nil, fmt.Errorf("compressing alpha stream: %w", err)
	}

	a := &assembler{}
	a.buf.WriteString("%PDF-1.4\n")

	a.beginObject(objImage)
	fmt.Fprintf(&a.buf,
		"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /FlateDecode /Length %d /SMask %d 0 R >>\n",
		width, height, len(rgbData), objMask)
	a.writeStream(rgbData)

	a.beginObject(objMask)
	fmt.Fprintf(&a.buf,
		"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceGray /BitsPerComponent 8 /Filter /FlateDecode /Length %d >>\n",
		width, height, len(maskData))
	a.writeStream(maskData)

	// One placement operator sequence: scale the unit square to the pixel
	// dimensions and draw the image.
	content := fmt.Sprintf("q\n%d 0 0 %d 0 0 cm\n/Im%d Do\nQ", width, height, objImage)
	a.beginObject(objContent)
	fmt.Fprintf(&a.buf, "<< /Length %d >>\n", len(content))
	fmt.Fprintf(&a.buf, "stream\n%s\nendstream\nendobj\n", content)

	a.beginObject(objPage)
	fmt.Fprintf(&a.buf,
		"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] /Contents %d 0 R /Resources << /XObject << /Im%d %d 0 R >> >> >>\nendobj\n",
		objPages, width, height, objContent, objImage, objImage)

	a.beginObject(objPages)
	fmt.Fprintf(&a.buf, "<< /Type /Pages /Kids [ %d 0 R ] /Count 1 >>\nendobj\n", objPage)

	a.beginObject(objCatalog)
	fmt.Fprintf(&a.buf, "<< /Type /Catalog /Pages %d 0 R >>\nendobj\n", objPages)

	a.writeXref()
	return a.buf.Bytes(), nil
}
