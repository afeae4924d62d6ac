// ABOUTME: Per-screen wiring for the console: columns, detail views, edit fields.
// ABOUTME: Also holds the sell/report/want creation flows and dashboard views.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/motorvia/motorvia-console/internal/api"
	"github.com/motorvia/motorvia-console/internal/config"
	"github.com/motorvia/motorvia-console/internal/listview"
	"github.com/motorvia/motorvia-console/internal/model"
	"github.com/motorvia/motorvia-console/internal/render"
	"github.com/motorvia/motorvia-console/internal/screen"
)

// --- vehicles ---

func vehicleDef() screenDef[model.Vehicle] {
	return screenDef[model.Vehicle]{
		headers: []string{"ID", "VEHICLE", "PRICE", "MILEAGE", "STATUS", "LISTED"},
		row: func(v model.Vehicle) []string {
			return []string{
				render.Truncate(v.ID, 12),
				render.Truncate(v.DisplayName(), 28),
				render.Price(v.Price),
				strconv.Itoa(v.Mileage),
				render.Status(v.Status),
				render.Time(v.CreatedAt),
			}
		},
		detail: func(v model.Vehicle) {
			cyan := color.New(color.FgCyan)
			cyan.Printf("  %s\n", v.DisplayName())
			fmt.Printf("  ID:           %s\n", v.ID)
			fmt.Printf("  Price:        %s\n", render.Price(v.Price))
			fmt.Printf("  Mileage:      %d\n", v.Mileage)
			fmt.Printf("  Fuel:         %s\n", v.FuelType)
			fmt.Printf("  Transmission: %s\n", v.Transmission)
			fmt.Printf("  Ownership:    %s\n", v.Ownership)
			fmt.Printf("  Status:       %s\n", render.Status(v.Status))
			fmt.Printf("  Listed:       %s\n", render.Time(v.CreatedAt))
			if v.Description != "" {
				fmt.Println()
				fmt.Println(indent(render.Markdown(v.Description), "  "))
			}
		},
		set:       setVehicleField,
		extra:     vehicleExtra,
		extraHelp: []string{"  sell                     List a new vehicle for sale"},
	}
}

func setVehicleField(v *model.Vehicle, field, value string) error {
	switch field {
	case "price":
		p, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid price: %q", value)
		}
		v.Price = p
	case "mileage":
		m, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid mileage: %q", value)
		}
		v.Mileage = m
	case "status":
		v.Status = value
	case "description":
		v.Description = value
	case "fuel":
		v.FuelType = value
	case "transmission":
		v.Transmission = value
	default:
		return fmt.Errorf("unknown field %q (price, mileage, status, description, fuel, transmission)", field)
	}
	return nil
}

func vehicleExtra(ctx context.Context, a *app, s *screen.Screen[model.Vehicle], cmd, arg string) (bool, error) {
	if cmd != "sell" {
		return false, nil
	}
	return true, a.sellFlow(ctx, s)
}

// sellFlow collects the listing form, validates it locally, and submits
// it with any image paths as a multipart upload.
func (a *app) sellFlow(ctx context.Context, s *screen.Screen[model.Vehicle]) error {
	form := &api.VehicleForm{}
	var err error
	if form.Make, err = a.in.line(ctx, "Make: "); err != nil {
		return err
	}
	if form.Model, err = a.in.line(ctx, "Model: "); err != nil {
		return err
	}
	yearStr, err := a.in.line(ctx, "Year: ")
	if err != nil {
		return err
	}
	form.Year, _ = strconv.Atoi(yearStr)
	priceStr, err := a.in.line(ctx, "Price: ")
	if err != nil {
		return err
	}
	form.Price, _ = strconv.ParseFloat(priceStr, 64)
	mileageStr, err := a.in.line(ctx, "Mileage: ")
	if err != nil {
		return err
	}
	form.Mileage, _ = strconv.Atoi(mileageStr)
	if form.FuelType, err = a.in.line(ctx, "Fuel type: "); err != nil {
		return err
	}
	if form.Transmission, err = a.in.line(ctx, "Transmission: "); err != nil {
		return err
	}
	if form.Description, err = a.in.line(ctx, "Description (markdown): "); err != nil {
		return err
	}

	if errs := screen.ValidateVehicleForm(form); !errs.Ok() {
		printFieldErrors(errs)
		return nil
	}

	images, err := a.collectImages(ctx)
	if err != nil {
		return err
	}

	return s.Create(ctx, func(ctx context.Context) (model.Vehicle, error) {
		created, err := a.client.CreateVehicle(ctx, form, images)
		if err != nil {
			return model.Vehicle{}, err
		}
		return *created, nil
	})
}

// collectImages reads image paths one per line until blank and opens
// each file for upload.
func (a *app) collectImages(ctx context.Context) ([]api.Upload, error) {
	var uploads []api.Upload
	for {
		path, err := a.in.line(ctx, "Image path (blank to finish): ")
		if err != nil {
			return nil, err
		}
		if path == "" {
			return uploads, nil
		}
		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("Cannot read %s: %v\n", path, err)
			continue
		}
		uploads = append(uploads, api.Upload{Filename: f.Name(), Reader: f})
	}
}

func printFieldErrors(errs screen.FieldErrors) {
	color.Red("Validation failed:")
	for field, msg := range errs {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}

func (a *app) browseVehicles(ctx context.Context) error {
	s := screen.Vehicles(a.client, a.cfg.Screens.PageSize("vehicles"))
	return browse(ctx, a, s, vehicleDef())
}

func (a *app) browseSales(ctx context.Context) error {
	ident, err := a.requireIdentity()
	if err != nil {
		return err
	}
	s := screen.MySales(a.client, ident.UserID, a.cfg.Screens.PageSize("sales"))
	return browse(ctx, a, s, vehicleDef())
}

// --- rentals ---

func rentalDef() screenDef[model.Booking] {
	return screenDef[model.Booking]{
		headers: []string{"ID", "VEHICLE", "TYPE", "PICKUP", "RETURN", "HOURS LEFT", "PAYMENT"},
		row: func(b model.Booking) []string {
			return []string{
				render.Truncate(b.ID, 12),
				render.Truncate(b.VehicleID, 12),
				b.RentalType,
				render.Time(b.PickupAt),
				render.Time(b.ReturnAt),
				strconv.Itoa(b.HoursRemaining(time.Now())),
				render.Status(b.PaymentStatus),
			}
		},
		detail: func(b model.Booking) {
			cyan := color.New(color.FgCyan)
			cyan.Printf("  Booking %s\n", b.ID)
			fmt.Printf("  Vehicle:     %s\n", b.VehicleID)
			fmt.Printf("  Type:        %s\n", b.RentalType)
			fmt.Printf("  Pickup:      %s\n", render.Time(b.PickupAt))
			fmt.Printf("  Return:      %s\n", render.Time(b.ReturnAt))
			fmt.Printf("  Total hours: %d\n", b.HoursTotal())
			fmt.Printf("  Hours left:  %d\n", b.HoursRemaining(time.Now()))
			fmt.Printf("  With driver: %v\n", b.WithDriver)
			fmt.Printf("  Payment:     %s via %s\n", render.Status(b.PaymentStatus), b.PaymentMethod)
		},
	}
}

func (a *app) browseRentals(ctx context.Context) error {
	if _, err := a.requireIdentity(); err != nil {
		return err
	}
	s := screen.Rentals(a.client, a.cfg.Screens.PageSize("rentals"))
	return browse(ctx, a, s, rentalDef())
}

// --- transactions ---

func transactionDef() screenDef[model.Transaction] {
	return screenDef[model.Transaction]{
		headers: []string{"ID", "ORDER", "AMOUNT", "METHOD", "STATUS", "DATE"},
		row: func(t model.Transaction) []string {
			return []string{
				render.Truncate(t.ID, 12),
				render.Truncate(t.OrderID, 14),
				render.Price(t.Amount),
				t.PaymentMethod,
				render.Status(t.Status),
				render.Time(t.CreatedAt),
			}
		},
		detail: func(t model.Transaction) {
			cyan := color.New(color.FgCyan)
			cyan.Printf("  Transaction %s\n", t.ID)
			fmt.Printf("  Order:   %s\n", t.OrderID)
			if t.BookingID != "" {
				fmt.Printf("  Booking: %s\n", t.BookingID)
			}
			fmt.Printf("  Amount:  %s\n", render.Price(t.Amount))
			fmt.Printf("  Method:  %s\n", t.PaymentMethod)
			fmt.Printf("  Status:  %s\n", render.Status(t.Status))
			fmt.Printf("  Created: %s\n", render.Time(t.CreatedAt))
			fmt.Printf("  Updated: %s\n", render.Time(t.UpdatedAt))
		},
	}
}

func (a *app) browseTransactions(ctx context.Context) error {
	if _, err := a.requireIdentity(); err != nil {
		return err
	}
	s := screen.Transactions(a.client, a.cfg.Screens.PageSize("transactions"))
	return browse(ctx, a, s, transactionDef())
}

// --- lost and found ---

func lostFoundDef() screenDef[model.LostFoundItem] {
	return screenDef[model.LostFoundItem]{
		headers: []string{"ID", "TYPE", "TITLE", "LOCATION", "DATE", "STATUS"},
		row: func(it model.LostFoundItem) []string {
			return []string{
				render.Truncate(it.ID, 12),
				it.Type,
				render.Truncate(it.Title, 28),
				render.Truncate(it.Location, 20),
				render.Time(it.Date),
				render.Status(it.Status),
			}
		},
		detail: func(it model.LostFoundItem) {
			cyan := color.New(color.FgCyan)
			cyan.Printf("  [%s] %s\n", it.Type, it.Title)
			fmt.Printf("  ID:       %s\n", it.ID)
			fmt.Printf("  Location: %s\n", it.Location)
			fmt.Printf("  Date:     %s\n", render.Time(it.Date))
			fmt.Printf("  Status:   %s\n", render.Status(it.Status))
			if it.VehicleMake != "" || it.VehicleModel != "" {
				fmt.Printf("  Vehicle:  %s %s\n", it.VehicleMake, it.VehicleModel)
			}
			if it.PlateNumber != "" {
				fmt.Printf("  Plate:    %s\n", it.PlateNumber)
			}
			if it.Description != "" {
				fmt.Println()
				fmt.Println(indent(render.Markdown(it.Description), "  "))
			}
		},
		set:   setLostFoundField,
		extra: lostFoundExtra,
		extraHelp: []string{
			"  report                   File a new lost/found report",
			"  resolve <id>             Mark a report resolved",
		},
	}
}

func setLostFoundField(it *model.LostFoundItem, field, value string) error {
	switch field {
	case "title":
		it.Title = value
	case "location":
		it.Location = value
	case "description":
		it.Description = value
	case "plate":
		it.PlateNumber = value
	case "status":
		it.Status = value
	default:
		return fmt.Errorf("unknown field %q (title, location, description, plate, status)", field)
	}
	return nil
}

func lostFoundExtra(ctx context.Context, a *app, s *screen.Screen[model.LostFoundItem], cmd, arg string) (bool, error) {
	switch cmd {
	case "report":
		return true, a.reportFlow(ctx, s)
	case "resolve":
		if arg == "" {
			return true, errors.New("usage: resolve <id>")
		}
		if err := a.client.ResolveLostFound(ctx, arg); err != nil {
			return true, err
		}
		// Reflect the status change without waiting for a refetch.
		if it, ok := s.Store().Get(arg); ok {
			it.Status = model.LostFoundStatusResolved
			if err := s.Store().Merge(it); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	return false, nil
}

// reportFlow collects a lost/found report and submits it with optional
// photos.
func (a *app) reportFlow(ctx context.Context, s *screen.Screen[model.LostFoundItem]) error {
	form := &api.LostFoundForm{}
	var err error
	if form.Type, err = a.in.line(ctx, "Type (lost/found): "); err != nil {
		return err
	}
	if form.Title, err = a.in.line(ctx, "Title: "); err != nil {
		return err
	}
	if form.Location, err = a.in.line(ctx, "Location: "); err != nil {
		return err
	}
	dateStr, err := a.in.line(ctx, "Date (YYYY-MM-DD, blank for today): ")
	if err != nil {
		return err
	}
	if dateStr == "" {
		form.Date = time.Now()
	} else if form.Date, err = time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	if form.Description, err = a.in.line(ctx, "Description (markdown): "); err != nil {
		return err
	}
	if form.VehicleMake, err = a.in.line(ctx, "Vehicle make (optional): "); err != nil {
		return err
	}
	if form.VehicleModel, err = a.in.line(ctx, "Vehicle model (optional): "); err != nil {
		return err
	}
	if form.PlateNumber, err = a.in.line(ctx, "Plate number (optional): "); err != nil {
		return err
	}

	if errs := screen.ValidateLostFoundForm(form); !errs.Ok() {
		printFieldErrors(errs)
		return nil
	}

	images, err := a.collectImages(ctx)
	if err != nil {
		return err
	}

	return s.Create(ctx, func(ctx context.Context) (model.LostFoundItem, error) {
		created, err := a.client.CreateLostFound(ctx, form, images)
		if err != nil {
			return model.LostFoundItem{}, err
		}
		return *created, nil
	})
}

func (a *app) browseLostFound(ctx context.Context) error {
	ident, err := a.requireIdentity()
	if err != nil {
		return err
	}
	s := screen.LostFound(a.client, ident.IsAdmin(), ident.UserID, a.cfg.Screens.PageSize("lostfound"))
	return browse(ctx, a, s, lostFoundDef())
}

// --- wishlist ---

func wishlistDef() screenDef[model.WishlistItem] {
	return screenDef[model.WishlistItem]{
		headers: []string{"ID", "PURPOSE", "VEHICLE", "YEARS", "BUDGET", "STATUS"},
		row: func(w model.WishlistItem) []string {
			years := ""
			if w.YearFrom > 0 || w.YearTo > 0 {
				years = fmt.Sprintf("%d-%d", w.YearFrom, w.YearTo)
			}
			return []string{
				render.Truncate(w.ID, 12),
				w.Purpose,
				render.Truncate(w.Make+" "+w.Model, 24),
				years,
				render.Price(w.Budget),
				render.Status(w.Status),
			}
		},
		detail: func(w model.WishlistItem) {
			cyan := color.New(color.FgCyan)
			cyan.Printf("  Wanted: %s %s (%s)\n", w.Make, w.Model, w.Purpose)
			fmt.Printf("  ID:     %s\n", w.ID)
			if w.YearFrom > 0 || w.YearTo > 0 {
				fmt.Printf("  Years:  %d-%d\n", w.YearFrom, w.YearTo)
			}
			fmt.Printf("  Budget: %s\n", render.Price(w.Budget))
			fmt.Printf("  Status: %s\n", render.Status(w.Status))
			if w.Notes != "" {
				fmt.Printf("  Notes:  %s\n", w.Notes)
			}
		},
		set:   setWishlistField,
		extra: wishlistExtra,
		extraHelp: []string{
			"  want                     Add a wanted vehicle",
			"  status                   Show wishlist status counts",
		},
	}
}

func setWishlistField(w *model.WishlistItem, field, value string) error {
	switch field {
	case "budget":
		b, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid budget: %q", value)
		}
		w.Budget = b
	case "status":
		w.Status = value
	case "notes":
		w.Notes = value
	default:
		return fmt.Errorf("unknown field %q (budget, status, notes)", field)
	}
	return nil
}

func wishlistExtra(ctx context.Context, a *app, s *screen.Screen[model.WishlistItem], cmd, arg string) (bool, error) {
	switch cmd {
	case "want":
		return true, a.wantFlow(ctx, s)
	case "status":
		counts, err := a.client.WishlistStatus(ctx)
		if err != nil {
			return true, err
		}
		for _, status := range []string{
			model.WishlistPending, model.WishlistAvailable,
			model.WishlistFulfilled, model.WishlistCancelled,
		} {
			fmt.Printf("  %-10s %d\n", render.Status(status), counts[status])
		}
		return true, nil
	}
	return false, nil
}

func (a *app) wantFlow(ctx context.Context, s *screen.Screen[model.WishlistItem]) error {
	item := &model.WishlistItem{}
	var err error
	if item.Purpose, err = a.in.line(ctx, "Purpose (buy/rent): "); err != nil {
		return err
	}
	if item.Make, err = a.in.line(ctx, "Make: "); err != nil {
		return err
	}
	if item.Model, err = a.in.line(ctx, "Model: "); err != nil {
		return err
	}
	budgetStr, err := a.in.line(ctx, "Budget: ")
	if err != nil {
		return err
	}
	item.Budget, _ = strconv.ParseFloat(budgetStr, 64)
	if item.Notes, err = a.in.line(ctx, "Notes (optional): "); err != nil {
		return err
	}

	return s.Create(ctx, func(ctx context.Context) (model.WishlistItem, error) {
		created, err := a.client.CreateWishlistItem(ctx, item)
		if err != nil {
			return model.WishlistItem{}, err
		}
		return *created, nil
	})
}

func (a *app) browseWishlist(ctx context.Context) error {
	if _, err := a.requireIdentity(); err != nil {
		return err
	}
	s := screen.Wishlist(a.client, a.cfg.Screens.PageSize("wishlist"))
	return browse(ctx, a, s, wishlistDef())
}

// --- dashboard and activity ---

func (a *app) showDashboard(ctx context.Context) error {
	if _, err := a.requireIdentity(); err != nil {
		return err
	}

	notifications, err := a.client.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("fetching notifications: %w", err)
	}
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	cyan := color.New(color.FgCyan)
	cyan.Printf("  Notifications (%d unread)\n", unread)
	if len(notifications) == 0 {
		fmt.Println("  none")
	}
	for i, n := range notifications {
		if i == 5 {
			fmt.Printf("  ... and %d more\n", len(notifications)-5)
			break
		}
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("  %s %s  %s\n", marker, render.Time(n.CreatedAt), render.Truncate(n.Text, 60))
	}
	fmt.Println()

	models, err := a.client.TopSellingModels(ctx)
	if err != nil {
		return fmt.Errorf("fetching top sellers: %w", err)
	}
	cyan.Println("  Top selling models")
	rows := make([][]string, 0, len(models))
	for _, m := range models {
		rows = append(rows, []string{
			m.Make + " " + m.Model,
			strconv.Itoa(m.Units),
			render.Price(m.Revenue),
		})
	}
	render.Table(os.Stdout, []string{"MODEL", "UNITS", "REVENUE"}, rows)
	return nil
}

func (a *app) showActivity(ctx context.Context) error {
	muts, err := a.snap.RecentMutations(ctx, 20)
	if err != nil {
		return err
	}
	if len(muts) == 0 {
		fmt.Println("No recorded activity (snapshots may be disabled)")
		return nil
	}
	rows := make([][]string, 0, len(muts))
	for _, m := range muts {
		rows = append(rows, []string{
			render.Time(m.At),
			m.Resource,
			m.Op,
			render.Truncate(m.RecordID, 16),
		})
	}
	render.Table(os.Stdout, []string{"WHEN", "RESOURCE", "OP", "RECORD"}, rows)
	return nil
}

// --- presets ---

// applyPreset opens the preset's screen with its saved query, sort,
// and filters already applied.
func (a *app) applyPreset(ctx context.Context, name string) error {
	if name == "" {
		names := make([]string, 0, len(a.presets.Presets))
		for n := range a.presets.Presets {
			names = append(names, n)
		}
		if len(names) == 0 {
			fmt.Println("No presets defined in " + config.DefaultPresetsPath())
			return nil
		}
		fmt.Println("Presets: " + strings.Join(names, ", "))
		return nil
	}

	p, ok := a.presets.Get(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}

	switch p.Screen {
	case "vehicles":
		s := screen.Vehicles(a.client, a.cfg.Screens.PageSize("vehicles"))
		applyPresetState(s, p)
		return browse(ctx, a, s, vehicleDef())
	case "lostfound":
		ident, err := a.requireIdentity()
		if err != nil {
			return err
		}
		s := screen.LostFound(a.client, ident.IsAdmin(), ident.UserID, a.cfg.Screens.PageSize("lostfound"))
		applyPresetState(s, p)
		return browse(ctx, a, s, lostFoundDef())
	case "wishlist":
		s := screen.Wishlist(a.client, a.cfg.Screens.PageSize("wishlist"))
		applyPresetState(s, p)
		return browse(ctx, a, s, wishlistDef())
	case "transactions":
		s := screen.Transactions(a.client, a.cfg.Screens.PageSize("transactions"))
		applyPresetState(s, p)
		return browse(ctx, a, s, transactionDef())
	default:
		return fmt.Errorf("preset %q targets unknown screen %q", name, p.Screen)
	}
}

func applyPresetState[T any](s *screen.Screen[T], p config.Preset) {
	if p.Query != "" {
		s.SetSearch(p.Query)
	}
	for name, value := range p.Filters {
		s.SetFilter(name, value)
	}
	if key := listview.ParseSortKey(p.Sort); key != listview.SortNone {
		s.SetSort(key)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
