package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator renders a PNG pointing at the public tracking page of an order.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.TrackingURL(orderID), qrcode.Medium, size)
}

func (g DefaultQRGenerator) TrackingURL(orderID int) string {
	return fmt.Sprintf("%s/orders/%d", strings.TrimRight(g.BaseURL, "/"), orderID)
}
