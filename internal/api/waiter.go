package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

func (c *Client) WaiterPreparingOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/waiter/orders/preparing", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) WaiterReadyOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/waiter/orders/ready", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) WaiterAssignedOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/waiter/orders/assigned", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MarkServed moves a READY order toward completion.
func (c *Client) MarkServed(ctx context.Context, orderID int64) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.put(ctx, fmt.Sprintf("/waiter/orders/%d/serve", orderID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
