// ABOUTME: Declarative screen configurations for every list view in the console
// ABOUTME: Each constructor names its search fields, filters, sorts, and page size

package screen

import (
	"context"
	"time"

	"github.com/motorvia/motorvia-console/internal/api"
	"github.com/motorvia/motorvia-console/internal/listview"
	"github.com/motorvia/motorvia-console/internal/model"
)

// Vehicles is the buy/browse screen over every listing.
func Vehicles(client *api.Client, pageSize int) *Screen[model.Vehicle] {
	return New(Config[model.Vehicle]{
		Name: "vehicles",
		Key:  func(v model.Vehicle) string { return v.ID },
		View: vehicleView(pageSize),
		Fetch: func(ctx context.Context) ([]model.Vehicle, error) {
			return client.ListVehicles(ctx)
		},
		Mutators: Mutators[model.Vehicle]{
			Update: func(ctx context.Context, v model.Vehicle) error {
				return client.UpdateVehicle(ctx, &v)
			},
			Delete: client.DeleteVehicle,
		},
	})
}

// MySales is the seller's own listings, with price/date sorting.
func MySales(client *api.Client, userID string, pageSize int) *Screen[model.Vehicle] {
	return New(Config[model.Vehicle]{
		Name: "sales",
		Key:  func(v model.Vehicle) string { return v.ID },
		View: vehicleView(pageSize),
		Fetch: func(ctx context.Context) ([]model.Vehicle, error) {
			return client.ListUserVehicles(ctx, userID)
		},
		Mutators: Mutators[model.Vehicle]{
			Update: func(ctx context.Context, v model.Vehicle) error {
				return client.UpdateVehicle(ctx, &v)
			},
			Delete: client.DeleteVehicle,
		},
	})
}

func vehicleView(pageSize int) *listview.View[model.Vehicle] {
	return &listview.View[model.Vehicle]{
		SearchFields: []listview.FieldFunc[model.Vehicle]{
			func(v model.Vehicle) string { return v.Make },
			func(v model.Vehicle) string { return v.Model },
			func(v model.Vehicle) string { return v.Description },
		},
		Filters: map[string]listview.FieldFunc[model.Vehicle]{
			"status":       func(v model.Vehicle) string { return v.Status },
			"fuel":         func(v model.Vehicle) string { return v.FuelType },
			"transmission": func(v model.Vehicle) string { return v.Transmission },
		},
		Dates: map[string]listview.TimeFunc[model.Vehicle]{
			"created": func(v model.Vehicle) time.Time { return v.CreatedAt },
		},
		Price:    func(v model.Vehicle) float64 { return v.Price },
		Date:     func(v model.Vehicle) time.Time { return v.CreatedAt },
		PageSize: pageSize,
	}
}

// Rentals is the user's bookings screen.
func Rentals(client *api.Client, pageSize int) *Screen[model.Booking] {
	return New(Config[model.Booking]{
		Name: "rentals",
		Key:  func(b model.Booking) string { return b.ID },
		View: &listview.View[model.Booking]{
			SearchFields: []listview.FieldFunc[model.Booking]{
				func(b model.Booking) string { return b.VehicleID },
				func(b model.Booking) string { return b.PaymentMethod },
			},
			Filters: map[string]listview.FieldFunc[model.Booking]{
				"type":    func(b model.Booking) string { return b.RentalType },
				"payment": func(b model.Booking) string { return b.PaymentStatus },
			},
			Date:     func(b model.Booking) time.Time { return b.CreatedAt },
			PageSize: pageSize,
		},
		Fetch: func(ctx context.Context) ([]model.Booking, error) {
			return client.ListBookings(ctx)
		},
	})
}

// Transactions is the payment history screen.
func Transactions(client *api.Client, pageSize int) *Screen[model.Transaction] {
	return New(Config[model.Transaction]{
		Name: "transactions",
		Key:  func(t model.Transaction) string { return t.ID },
		View: &listview.View[model.Transaction]{
			SearchFields: []listview.FieldFunc[model.Transaction]{
				func(t model.Transaction) string { return t.ID },
				func(t model.Transaction) string { return t.OrderID },
			},
			Filters: map[string]listview.FieldFunc[model.Transaction]{
				"status": func(t model.Transaction) string { return t.Status },
				"method": func(t model.Transaction) string { return t.PaymentMethod },
			},
			Dates: map[string]listview.TimeFunc[model.Transaction]{
				"created": func(t model.Transaction) time.Time { return t.CreatedAt },
			},
			Price:    func(t model.Transaction) float64 { return t.Amount },
			Date:     func(t model.Transaction) time.Time { return t.CreatedAt },
			PageSize: pageSize,
		},
		Fetch: func(ctx context.Context) ([]model.Transaction, error) {
			return client.ListTransactions(ctx)
		},
	})
}

// LostFound is the lost-and-found screen. admin selects the all-reports
// read; otherwise the screen is scoped to the given user's reports.
//
// Filtering rule carried over from the original screens: while the type
// filter is active and no explicit status filter is set, resolved reports
// are excluded; someone browsing "lost" items wants open reports unless
// they ask for resolved ones.
func LostFound(client *api.Client, admin bool, userID string, pageSize int) *Screen[model.LostFoundItem] {
	fetch := func(ctx context.Context) ([]model.LostFoundItem, error) {
		return client.ListUserLostFound(ctx, userID)
	}
	if admin {
		fetch = func(ctx context.Context) ([]model.LostFoundItem, error) {
			return client.AdminListLostFound(ctx)
		}
	}

	return New(Config[model.LostFoundItem]{
		Name: "lostfound",
		Key:  func(it model.LostFoundItem) string { return it.ID },
		View: &listview.View[model.LostFoundItem]{
			SearchFields: []listview.FieldFunc[model.LostFoundItem]{
				func(it model.LostFoundItem) string { return it.Title },
				func(it model.LostFoundItem) string { return it.Description },
				func(it model.LostFoundItem) string { return it.Location },
				func(it model.LostFoundItem) string { return it.PlateNumber },
			},
			Filters: map[string]listview.FieldFunc[model.LostFoundItem]{
				"type":   func(it model.LostFoundItem) string { return it.Type },
				"status": func(it model.LostFoundItem) string { return it.Status },
			},
			Dates: map[string]listview.TimeFunc[model.LostFoundItem]{
				"date": func(it model.LostFoundItem) time.Time { return it.Date },
			},
			Rules: []listview.Rule[model.LostFoundItem]{
				func(it model.LostFoundItem, s listview.State) bool {
					if s.FilterActive("type") && !s.FilterActive("status") {
						return it.Status != model.LostFoundStatusResolved
					}
					return true
				},
			},
			Date:     func(it model.LostFoundItem) time.Time { return it.Date },
			PageSize: pageSize,
		},
		Fetch: fetch,
		Mutators: Mutators[model.LostFoundItem]{
			Update: func(ctx context.Context, it model.LostFoundItem) error {
				return client.EditLostFound(ctx, &it)
			},
			Delete: client.DeleteLostFound,
		},
	})
}

// Wishlist is the wanted-vehicles screen.
func Wishlist(client *api.Client, pageSize int) *Screen[model.WishlistItem] {
	return New(Config[model.WishlistItem]{
		Name: "wishlist",
		Key:  func(w model.WishlistItem) string { return w.ID },
		View: &listview.View[model.WishlistItem]{
			SearchFields: []listview.FieldFunc[model.WishlistItem]{
				func(w model.WishlistItem) string { return w.Make },
				func(w model.WishlistItem) string { return w.Model },
				func(w model.WishlistItem) string { return w.Notes },
			},
			Filters: map[string]listview.FieldFunc[model.WishlistItem]{
				"purpose": func(w model.WishlistItem) string { return w.Purpose },
				"status":  func(w model.WishlistItem) string { return w.Status },
			},
			Price:    func(w model.WishlistItem) float64 { return w.Budget },
			Date:     func(w model.WishlistItem) time.Time { return w.CreatedAt },
			PageSize: pageSize,
		},
		Fetch: func(ctx context.Context) ([]model.WishlistItem, error) {
			return client.ListWishlist(ctx)
		},
		Mutators: Mutators[model.WishlistItem]{
			Update: func(ctx context.Context, w model.WishlistItem) error {
				return client.UpdateWishlistItem(ctx, &w)
			},
			Delete: client.DeleteWishlistItem,
		},
	})
}

// Users is the admin account-management screen, with createdAt date
// filtering (last month / last year).
func Users(client *api.Client, pageSize int) *Screen[model.User] {
	return New(Config[model.User]{
		Name: "users",
		Key:  func(u model.User) string { return u.ID },
		View: &listview.View[model.User]{
			SearchFields: []listview.FieldFunc[model.User]{
				func(u model.User) string { return u.Name },
				func(u model.User) string { return u.Username },
				func(u model.User) string { return u.Email },
				func(u model.User) string { return u.Phone },
			},
			Dates: map[string]listview.TimeFunc[model.User]{
				"created": func(u model.User) time.Time { return u.CreatedAt },
			},
			Date:     func(u model.User) time.Time { return u.CreatedAt },
			PageSize: pageSize,
		},
		Fetch: func(ctx context.Context) ([]model.User, error) {
			return client.ListUsers(ctx)
		},
		Mutators: Mutators[model.User]{
			Update: func(ctx context.Context, u model.User) error {
				return client.UpdateUser(ctx, &u)
			},
			Delete: client.DeleteUser,
		},
	})
}
