// ABOUTME: Dashboard aggregate reads: notifications, bookings, transactions, top sellers
// ABOUTME: One-shot GETs against the /api route group, no paging requested

package api

import (
	"context"

	"github.com/motorvia/motorvia-console/internal/model"
)

// ListNotifications fetches the current user's notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var items []model.Notification
	if err := c.get(ctx, "/api/notifications", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListBookings fetches the current user's rental bookings.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var items []model.Booking
	if err := c.get(ctx, "/api/bookings", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListLostFound fetches the dashboard's lost-and-found feed.
func (c *Client) ListLostFound(ctx context.Context) ([]model.LostFoundItem, error) {
	var items []model.LostFoundItem
	if err := c.get(ctx, "/api/lostandfound", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListTransactions fetches the current user's transactions.
func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var items []model.Transaction
	if err := c.get(ctx, "/api/transactions", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetTransaction fetches the transaction detail read.
func (c *Client) GetTransaction(ctx context.Context) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.get(ctx, "/api/transaction", &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// TopSellingModels fetches the best-seller aggregate.
func (c *Client) TopSellingModels(ctx context.Context) ([]model.ModelSales, error) {
	var rows []model.ModelSales
	if err := c.get(ctx, "/api/topsellingmodels", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
