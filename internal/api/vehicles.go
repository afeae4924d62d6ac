// ABOUTME: Vehicle listing operations: list reads, edit/delete, multipart sell form
// ABOUTME: Paths mirror the backend's /vehicles and /addVehicle route group

package api

import (
	"context"
	"strconv"

	"github.com/motorvia/motorvia-console/internal/model"
)

// ListVehicles fetches every listing.
func (c *Client) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := c.get(ctx, "/vehicles/all", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListUserVehicles fetches the listings owned by one user (the my-sales view).
func (c *Client) ListUserVehicles(ctx context.Context, userID string) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := c.get(ctx, "/vehicles/user/"+userID, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetActiveVehicle fetches one active listing's detail.
func (c *Client) GetActiveVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := c.get(ctx, "/vehicles/active/one/"+id, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVehicle sends the full edited listing. The caller's values become
// the local truth on success; the response payload is not reconciled.
func (c *Client) UpdateVehicle(ctx context.Context, v *model.Vehicle) error {
	return c.sendJSON(ctx, "PUT", "/vehicles/"+v.ID, v, nil)
}

// DeleteVehicle removes a listing. The backend exposes no soft delete.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.delete(ctx, "/vehicles/"+id)
}

// VehicleForm is the sell-form payload for the multipart create.
type VehicleForm struct {
	Make         string
	Model        string
	Year         int
	Price        float64
	Mileage      int
	FuelType     string
	Transmission string
	Ownership    string
	Description  string
}

// fields flattens the form into multipart scalar values.
func (f *VehicleForm) fields() map[string]string {
	return map[string]string{
		"make":         f.Make,
		"model":        f.Model,
		"year":         strconv.Itoa(f.Year),
		"price":        strconv.FormatFloat(f.Price, 'f', 2, 64),
		"mileage":      strconv.Itoa(f.Mileage),
		"fuel_type":    f.FuelType,
		"transmission": f.Transmission,
		"ownership":    f.Ownership,
		"description":  f.Description,
	}
}

// CreateVehicle submits the sell form with its images as one multipart
// request and returns the created listing.
func (c *Client) CreateVehicle(ctx context.Context, form *VehicleForm, images []Upload) (*model.Vehicle, error) {
	var created model.Vehicle
	if err := c.postMultipart(ctx, "/addVehicle", form.fields(), images, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
