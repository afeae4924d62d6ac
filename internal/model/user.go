// ABOUTME: Marketplace user entity as served by the user administration API
// ABOUTME: Profile image is optional; CreatedAt drives the admin date filters

package model

import "time"

// User is a marketplace account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
