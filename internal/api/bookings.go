package api

import (
	"context"
	"fmt"
	"net/url"

	"javabite-client/internal/domain"
)

type CreateBookingRequest struct {
	TableNumber     int    `json:"tableNumber"`
	BookingDate     string `json:"bookingDate"`
	BookingTime     string `json:"bookingTime"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.post(ctx, "/bookings/create", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CheckAvailability returns the table numbers still free for the slot; any
// table absent from the result is booked.
func (c *Client) CheckAvailability(ctx context.Context, date, timeSlot string) ([]int, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("time", timeSlot)

	var tables []int
	if err := c.get(ctx, "/bookings/check-availability", query, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *Client) Booking(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.put(ctx, fmt.Sprintf("/bookings/%d/cancel", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
