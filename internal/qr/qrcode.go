package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"javabite-client/internal/domain"
)

// Generator renders booking confirmations as QR codes the customer shows at
// the door.
type Generator interface {
	BookingCode(booking *domain.Booking) ([]byte, error)
}

type PNGGenerator struct {
	BaseURL string
	Size    int
}

func NewPNGGenerator(baseURL string) PNGGenerator {
	return PNGGenerator{BaseURL: baseURL, Size: 256}
}

func (g PNGGenerator) BookingCode(booking *domain.Booking) ([]byte, error) {
	data := fmt.Sprintf("%s/bookings/%d?table=%d&date=%s&time=%s",
		g.BaseURL, booking.ID, booking.TableNumber, booking.BookingDate, booking.BookingTime)
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
