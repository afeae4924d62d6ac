// ABOUTME: Lost-and-found report operations: role-scoped reads, resolve/edit/delete
// ABOUTME: Creates are multipart; paths mirror the /api/lost-and-found route group

package api

import (
	"context"
	"time"

	"github.com/motorvia/motorvia-console/internal/model"
)

// AdminListLostFound fetches every report (admin back-office).
func (c *Client) AdminListLostFound(ctx context.Context) ([]model.LostFoundItem, error) {
	var items []model.LostFoundItem
	if err := c.get(ctx, "/api/lost-and-found/admin/all", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListUserLostFound fetches one user's reports.
func (c *Client) ListUserLostFound(ctx context.Context, userID string) ([]model.LostFoundItem, error) {
	var items []model.LostFoundItem
	if err := c.get(ctx, "/api/lost-and-found/all2/"+userID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ResolveLostFound marks a report resolved.
func (c *Client) ResolveLostFound(ctx context.Context, id string) error {
	return c.sendJSON(ctx, "PUT", "/api/lost-and-found/resolve/"+id, struct{}{}, nil)
}

// EditLostFound sends the full edited report.
func (c *Client) EditLostFound(ctx context.Context, item *model.LostFoundItem) error {
	return c.sendJSON(ctx, "PUT", "/api/lost-and-found/edit/"+item.ID, item, nil)
}

// DeleteLostFound removes a report.
func (c *Client) DeleteLostFound(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/lost-and-found/"+id)
}

// LostFoundForm is the report form for the multipart create.
type LostFoundForm struct {
	Type         string // lost | found
	Title        string
	Description  string
	Location     string
	Date         time.Time
	VehicleMake  string
	VehicleModel string
	PlateNumber  string
}

func (f *LostFoundForm) fields() map[string]string {
	return map[string]string{
		"type":          f.Type,
		"title":         f.Title,
		"description":   f.Description,
		"location":      f.Location,
		"date":          f.Date.Format(time.RFC3339),
		"vehicle_make":  f.VehicleMake,
		"vehicle_model": f.VehicleModel,
		"plate_number":  f.PlateNumber,
	}
}

// CreateLostFound submits a report with its images as one multipart
// request and returns the created record.
func (c *Client) CreateLostFound(ctx context.Context, form *LostFoundForm, images []Upload) (*model.LostFoundItem, error) {
	var created model.LostFoundItem
	if err := c.postMultipart(ctx, "/api/lost-and-found", form.fields(), images, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
