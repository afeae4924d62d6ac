// ABOUTME: Client-side form validation run before any network call
// ABOUTME: Failures are per-field; a failed validation skips the submit entirely

package screen

import (
	"strings"

	"github.com/motorvia/motorvia-console/internal/api"
	"github.com/motorvia/motorvia-console/internal/model"
)

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

// Ok reports whether validation passed.
func (e FieldErrors) Ok() bool { return len(e) == 0 }

// ValidateLostFoundForm checks the report form before submission.
func ValidateLostFoundForm(f *api.LostFoundForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "title is required"
	}
	if strings.TrimSpace(f.Location) == "" {
		errs["location"] = "location is required"
	}
	if f.Date.IsZero() {
		errs["date"] = "date is required"
	}
	if f.Type != model.LostFoundTypeLost && f.Type != model.LostFoundTypeFound {
		errs["type"] = "type must be lost or found"
	}
	return errs
}

// ValidateVehicleForm checks the sell form before submission.
func ValidateVehicleForm(f *api.VehicleForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Make) == "" {
		errs["make"] = "make is required"
	}
	if strings.TrimSpace(f.Model) == "" {
		errs["model"] = "model is required"
	}
	if f.Year < 1900 {
		errs["year"] = "year must be 1900 or later"
	}
	if f.Price <= 0 {
		errs["price"] = "price must be positive"
	}
	if f.Mileage < 0 {
		errs["mileage"] = "mileage cannot be negative"
	}
	return errs
}

// ValidateRegisterForm checks the admin user-creation form.
func ValidateRegisterForm(f *api.RegisterForm) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "username is required"
	}
	if !strings.Contains(f.Email, "@") {
		errs["email"] = "valid email is required"
	}
	if len(f.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}
	return errs
}
