package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

type OrderItemRequest struct {
	MenuItemID int64  `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

type CreateOrderRequest struct {
	Items               []OrderItemRequest `json:"items"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`
	CouponCode          string             `json:"couponCode,omitempty"`
	TableBookingID      int64              `json:"tableBookingId"`
}

type orderEnvelope struct {
	Data *domain.Order `json:"data"`
}

type ordersEnvelope struct {
	Data []domain.Order `json:"data"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.post(ctx, "/orders", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/orders/my-orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Order(ctx context.Context, id int64) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.put(ctx, fmt.Sprintf("/orders/%d/cancel", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
