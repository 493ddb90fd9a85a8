package api

import (
	"context"
	"fmt"

	"javabite-client/internal/domain"
)

type CreateFeedbackRequest struct {
	OrderID int64  `json:"orderId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type FeedbackStats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
}

func (c *Client) CreateFeedback(ctx context.Context, req CreateFeedbackRequest) (*domain.Feedback, error) {
	var fb domain.Feedback
	if err := c.post(ctx, "/feedback", req, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

// CanSubmitFeedback reports whether the order is still missing feedback.
func (c *Client) CanSubmitFeedback(ctx context.Context, orderID int64) (bool, error) {
	var resp struct {
		CanSubmit bool `json:"canSubmit"`
	}
	if err := c.get(ctx, fmt.Sprintf("/feedback/can-submit/%d", orderID), nil, &resp); err != nil {
		return false, err
	}
	return resp.CanSubmit, nil
}

func (c *Client) MyFeedback(ctx context.Context) ([]domain.Feedback, error) {
	var fbs []domain.Feedback
	if err := c.get(ctx, "/feedback/my-feedback", nil, &fbs); err != nil {
		return nil, err
	}
	return fbs, nil
}

func (c *Client) AllFeedback(ctx context.Context) ([]domain.Feedback, error) {
	var fbs []domain.Feedback
	if err := c.get(ctx, "/feedback/admin/all", nil, &fbs); err != nil {
		return nil, err
	}
	return fbs, nil
}

func (c *Client) FeedbackStatsAdmin(ctx context.Context) (*FeedbackStats, error) {
	var stats FeedbackStats
	if err := c.get(ctx, "/feedback/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) DeleteFeedback(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/feedback/admin/%d", id), nil, nil)
}
