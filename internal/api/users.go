// ABOUTME: User administration operations: list, detail, edit, delete, register
// ABOUTME: Paths mirror the backend's /users and /admin route groups

package api

import (
	"context"

	"github.com/motorvia/motorvia-console/internal/model"
)

// ListUsers fetches every account (admin back-office).
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/users/all", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one account's detail.
func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := c.get(ctx, "/admin/user/"+id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser sends the full edited account.
func (c *Client) UpdateUser(ctx context.Context, u *model.User) error {
	return c.sendJSON(ctx, "PUT", "/admin/user/"+u.ID, u, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/user/"+id)
}

// RegisterForm is the admin user-creation payload. The password travels
// in the clear over TLS; hashing is the backend's concern.
type RegisterForm struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// RegisterUser creates an account and returns the created record.
func (c *Client) RegisterUser(ctx context.Context, form *RegisterForm) (*model.User, error) {
	var created model.User
	if err := c.sendJSON(ctx, "POST", "/admin/register", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
