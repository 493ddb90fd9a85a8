package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

func (c *Client) ChefNewOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/chef/orders/new", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ChefActiveOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/chef/orders/active", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) ChefCompletedToday(ctx context.Context) ([]domain.Order, error) {
	var resp ordersEnvelope
	if err := c.get(ctx, "/chef/orders/completed-today", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// StartPreparation moves a PENDING order to PREPARING.
func (c *Client) StartPreparation(ctx context.Context, orderID int64) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.post(ctx, fmt.Sprintf("/chef/orders/%d/start", orderID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// MarkOrderReady moves a PREPARING order to READY.
func (c *Client) MarkOrderReady(ctx context.Context, orderID int64) (*domain.Order, error) {
	var resp orderEnvelope
	if err := c.put(ctx, fmt.Sprintf("/chef/orders/%d/ready", orderID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
