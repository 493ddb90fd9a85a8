package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

// Customer booking-history endpoints, distinct from the /bookings group.

type BookingStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

func (c *Client) BookingHistory(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/customer/bookings/history", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ActiveBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/customer/bookings/active", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) BookingDetails(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.get(ctx, fmt.Sprintf("/customer/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBookingWithReason records why the customer cancelled; the backend
// decides refund handling.
func (c *Client) CancelBookingWithReason(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	if reason == "" {
		reason = "Cancelled by customer"
	}
	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}

	var booking domain.Booking
	if err := c.delete(ctx, fmt.Sprintf("/customer/bookings/%d/cancel", id), body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CustomerBookingStats(ctx context.Context) (*BookingStats, error) {
	var stats BookingStats
	if err := c.get(ctx, "/customer/bookings/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
