// ABOUTME: Wishlist operations: list, status aggregate, detail, CRUD
// ABOUTME: Paths mirror the /api/wishlist and /wishlist route groups

package api

import (
	"context"

	"github.com/motorvia/motorvia-console/internal/model"
)

// ListWishlist fetches the current user's wishlist.
func (c *Client) ListWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	if err := c.get(ctx, "/api/wishlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// WishlistStatusCounts is the dashboard aggregate keyed by status.
type WishlistStatusCounts map[string]int

// WishlistStatus fetches the per-status wishlist counts.
func (c *Client) WishlistStatus(ctx context.Context) (WishlistStatusCounts, error) {
	var counts WishlistStatusCounts
	if err := c.get(ctx, "/api/wishlist/status", &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetWishlistItem fetches one wishlist entry's detail.
func (c *Client) GetWishlistItem(ctx context.Context, id string) (*model.WishlistItem, error) {
	var item model.WishlistItem
	if err := c.get(ctx, "/wishlist/one/"+id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateWishlistItem posts a new wish and returns the created record.
func (c *Client) CreateWishlistItem(ctx context.Context, item *model.WishlistItem) (*model.WishlistItem, error) {
	var created model.WishlistItem
	if err := c.sendJSON(ctx, "POST", "/api/wishlist", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWishlistItem sends the full edited wish.
func (c *Client) UpdateWishlistItem(ctx context.Context, item *model.WishlistItem) error {
	return c.sendJSON(ctx, "PUT", "/api/wishlist/"+item.ID, item, nil)
}

// DeleteWishlistItem removes a wish.
func (c *Client) DeleteWishlistItem(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/wishlist/"+id)
}
