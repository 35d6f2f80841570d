package render

import (
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// qrPixels is the raster size used when a QR code is embedded into a PDF.
// PDF viewers scale it down to the planned physical size.
const qrPixels = 512

// QRPNG encodes content as a borderless QR code PNG.
func QRPNG(content string, size int) ([]byte, error) {
	q, err := newQR(content)
	if err != nil {
		return nil, err
	}
	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}

// QRImage returns the QR code as an image of size x size pixels.
func QRImage(content string, size int) (image.Image, error) {
	q, err := newQR(content)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}

func newQR(content string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}
	q.DisableBorder = true
	return q, nil
}
