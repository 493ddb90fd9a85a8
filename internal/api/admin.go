package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

type AssignStaffRequest struct {
	ChefID   int64 `json:"chefId"`
	WaiterID int64 `json:"waiterId,omitempty"`
}

type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Available   bool    `json:"available"`
}

type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var resp struct {
		Data *domain.DashboardStats `json:"data"`
	}
	if err := c.get(ctx, "/admin/dashboard/stats", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) PendingOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/admin/orders/pending", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) AllOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/admin/orders/all", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AssignStaff(ctx context.Context, orderID int64, req AssignStaffRequest) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.post(ctx, fmt.Sprintf("/admin/orders/%d/assign", orderID), req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ReassignStaff(ctx context.Context, orderID int64, req AssignStaffRequest) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.put(ctx, fmt.Sprintf("/admin/orders/%d/reassign", orderID), req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CancelOrderAdmin(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.put(ctx, fmt.Sprintf("/admin/orders/%d/cancel", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) RefundOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, fmt.Sprintf("/admin/orders/%d/refund", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderNotes(ctx context.Context, orderID int64, notes string) error {
	body := struct {
		Notes string `json:"notes"`
	}{Notes: notes}
	return c.put(ctx, fmt.Sprintf("/admin/orders/%d/notes", orderID), body, nil)
}

// Staff management.

func (c *Client) Chefs(ctx context.Context) ([]domain.User, error) {
	var resp struct {
		Data []domain.User `json:"data"`
	}
	if err := c.get(ctx, "/admin/staff/chefs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Waiters(ctx context.Context) ([]domain.User, error) {
	var resp struct {
		Data []domain.User `json:"data"`
	}
	if err := c.get(ctx, "/admin/staff/waiters", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateChef(ctx context.Context, req CreateStaffRequest) (*domain.User, error) {
	var resp userEnvelope
	if err := c.post(ctx, "/admin/create-chef", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateWaiter(ctx context.Context, req CreateStaffRequest) (*domain.User, error) {
	var resp userEnvelope
	if err := c.post(ctx, "/admin/create-waiter", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ToggleStaffStatus(ctx context.Context, userID int64) (*domain.User, error) {
	var resp userEnvelope
	if err := c.put(ctx, fmt.Sprintf("/admin/staff/%d/toggle", userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteStaff(ctx context.Context, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/staff/%d", userID), nil, nil)
}

// Menu management.

func (c *Client) AdminMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var resp menuItemsEnvelope
	if err := c.get(ctx, "/admin/menu", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, req MenuItemRequest) (*domain.MenuItem, error) {
	var resp menuItemEnvelope
	if err := c.post(ctx, "/admin/menu", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id int64, req MenuItemRequest) (*domain.MenuItem, error) {
	var resp menuItemEnvelope
	if err := c.put(ctx, fmt.Sprintf("/admin/menu/%d", id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/admin/menu/%d", id), nil, nil)
}

// Booking management.

func (c *Client) AllBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/admin/all", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) BookingsByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/admin/status/"+string(status), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) BookingsByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/admin/date/"+date, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	body := struct {
		Status domain.BookingStatus `json:"status"`
	}{Status: status}

	var booking domain.Booking
	if err := c.put(ctx, fmt.Sprintf("/bookings/admin/%d/status", id), body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}
