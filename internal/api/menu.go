package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

type menuItemsEnvelope struct {
	Data []domain.MenuItem `json:"data"`
}

type menuItemEnvelope struct {
	Data *domain.MenuItem `json:"data"`
}

func (c *Client) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var resp menuItemsEnvelope
	if err := c.get(ctx, "/menu", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) MenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var resp menuItemEnvelope
	if err := c.get(ctx, fmt.Sprintf("/menu/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) MenuItemsByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	var resp menuItemsEnvelope
	if err := c.get(ctx, "/menu/category/"+category, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
