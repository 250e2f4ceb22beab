package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GeneratePNG renders the given URL as a PNG QR code with the given pixel size.
func GeneratePNG(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}

	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}
