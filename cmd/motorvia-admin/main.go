// ABOUTME: Back-office CLI for the motorvia marketplace backend.
// ABOUTME: Manages accounts, lost-and-found reports, wishlists, and sales stats.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/motorvia/motorvia-console/internal/api"
	"github.com/motorvia/motorvia-console/internal/model"
	"github.com/motorvia/motorvia-console/internal/render"
	"github.com/motorvia/motorvia-console/internal/screen"
	"github.com/motorvia/motorvia-console/internal/session"
)

const banner = `
                 _                  _
 _ __ ___   ___ | |_ ___  _ ____   _(_) __ _
| '_ ' _ \ / _ \| __/ _ \| '__\ \ / / |/ _' |
| | | | | | (_) | || (_) | |   \ V /| | (_| |
|_| |_| |_|\___/ \__\___/|_|    \_/ |_|\__,_|
`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	backend := os.Getenv("MOTORVIA_BACKEND")
	if backend == "" {
		backend = "http://localhost:8080"
	}

	token, err := session.LoadToken(session.DefaultTokenPath())
	if err != nil {
		color.Red("Error: no session token: set %s or %s", session.TokenEnvVar, session.DefaultTokenPath())
		os.Exit(1)
	}
	ident, err := session.Parse(token)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	if !ident.IsAdmin() {
		color.Red("Error: %s is not an admin account", ident.DisplayName)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = session.WithIdentity(ctx, ident)

	client := api.New(backend, token, 0)
	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "me":
		err = cmdMe(ident)
	case "users":
		err = cmdUsers(ctx, client, args)
	case "reports":
		err = cmdReports(ctx, client, args)
	case "wishlist":
		err = cmdWishlist(ctx, client, args)
	case "sales":
		err = cmdSales(ctx, client, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: motorvia-admin <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  me                      Show your identity")
	fmt.Println("  users                   List all accounts")
	fmt.Println("  users show <id>         Show one account")
	fmt.Println("  users register          Create an account interactively")
	fmt.Println("  users edit <id> f=v     Update account fields")
	fmt.Println("  users delete <id>       Delete an account")
	fmt.Println("  reports                 List all lost-and-found reports")
	fmt.Println("  reports resolve <id>    Mark a report resolved")
	fmt.Println("  reports delete <id>     Delete a report")
	fmt.Println("  wishlist                List wishlist requests")
	fmt.Println("  wishlist status         Show wishlist status counts")
	fmt.Println("  sales top               Show top selling models")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Printf("  MOTORVIA_BACKEND        Backend URL (default http://localhost:8080)\n")
	fmt.Printf("  %s          JWT token (or %s)\n", session.TokenEnvVar, session.DefaultTokenPath())
}

func cmdMe(ident *session.Identity) error {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	fmt.Println()
	cyan.Println("  Identity")
	cyan.Println("  --------")
	fmt.Printf("  User ID:        %s\n", ident.UserID)
	fmt.Printf("  Display Name:   %s\n", ident.DisplayName)
	if len(ident.Roles) > 0 {
		green.Printf("  Roles:          %s\n", strings.Join(ident.Roles, ", "))
	} else {
		fmt.Printf("  Roles:          (none)\n")
	}
	fmt.Println()
	return nil
}

func cmdUsers(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return listUsers(ctx, client)
	}

	switch args[0] {
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: users show <id>")
		}
		return showUser(ctx, client, args[1])
	case "register":
		return registerUser(ctx, client)
	case "edit":
		if len(args) < 3 {
			return fmt.Errorf("usage: users edit <id> <field>=<value> ...")
		}
		return editUser(ctx, client, args[1], args[2:])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: users delete <id>")
		}
		if err := client.DeleteUser(ctx, args[1]); err != nil {
			return err
		}
		fmt.Printf("Deleted account %s\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown users subcommand: %s", args[0])
	}
}

func listUsers(ctx context.Context, client *api.Client) error {
	users, err := client.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No accounts")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			render.Truncate(u.ID, 12),
			render.Truncate(u.Name, 24),
			render.Truncate(u.Username, 16),
			render.Truncate(u.Email, 28),
			render.Time(u.CreatedAt),
		})
	}
	fmt.Println()
	render.Table(os.Stdout, []string{"ID", "NAME", "USERNAME", "EMAIL", "CREATED"}, rows)
	fmt.Println()
	return nil
}

func showUser(ctx context.Context, client *api.Client, id string) error {
	u, err := client.GetUser(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("no account with ID %s", id)
		}
		return err
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  %s\n", u.Name)
	fmt.Printf("  ID:       %s\n", u.ID)
	fmt.Printf("  Username: %s\n", u.Username)
	fmt.Printf("  Email:    %s\n", u.Email)
	if u.Phone != "" {
		fmt.Printf("  Phone:    %s\n", u.Phone)
	}
	fmt.Printf("  Created:  %s\n", render.Time(u.CreatedAt))
	fmt.Println()
	return nil
}

// editUser fetches the account, applies field=value args, and sends the
// full record back.
func editUser(ctx context.Context, client *api.Client, id string, edits []string) error {
	u, err := client.GetUser(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("no account with ID %s", id)
		}
		return err
	}

	for _, edit := range edits {
		field, value, ok := strings.Cut(edit, "=")
		if !ok {
			return fmt.Errorf("expected field=value, got %q", edit)
		}
		switch field {
		case "name":
			u.Name = value
		case "email":
			u.Email = value
		case "phone":
			u.Phone = value
		default:
			return fmt.Errorf("unknown field %q (name, email, phone)", field)
		}
	}

	if err := client.UpdateUser(ctx, u); err != nil {
		return err
	}
	color.Green("Updated account %s", id)
	return nil
}

func registerUser(ctx context.Context, client *api.Client) error {
	form := &api.RegisterForm{}
	form.Name = promptLine("Name: ")
	form.Username = promptLine("Username: ")
	form.Email = promptLine("Email: ")
	form.Phone = promptLine("Phone (optional): ")
	form.Password = promptLine("Password: ")

	if errs := screen.ValidateRegisterForm(form); !errs.Ok() {
		for field, msg := range errs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return fmt.Errorf("validation failed")
	}

	created, err := client.RegisterUser(ctx, form)
	if err != nil {
		return err
	}
	color.Green("Created account %s (%s)", created.ID, created.Username)
	return nil
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func cmdReports(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return listReports(ctx, client)
	}

	switch args[0] {
	case "resolve":
		if len(args) < 2 {
			return fmt.Errorf("usage: reports resolve <id>")
		}
		if err := client.ResolveLostFound(ctx, args[1]); err != nil {
			return err
		}
		fmt.Printf("Resolved report %s\n", args[1])
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: reports delete <id>")
		}
		if err := client.DeleteLostFound(ctx, args[1]); err != nil {
			return err
		}
		fmt.Printf("Deleted report %s\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown reports subcommand: %s", args[0])
	}
}

func listReports(ctx context.Context, client *api.Client) error {
	reports, err := client.AdminListLostFound(ctx)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Println("No reports")
		return nil
	}

	open := 0
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		if r.Status != model.LostFoundStatusResolved {
			open++
		}
		rows = append(rows, []string{
			render.Truncate(r.ID, 12),
			r.Type,
			render.Truncate(r.Title, 28),
			render.Truncate(r.Location, 20),
			render.Time(r.Date),
			render.Status(r.Status),
		})
	}
	fmt.Println()
	render.Table(os.Stdout, []string{"ID", "TYPE", "TITLE", "LOCATION", "DATE", "STATUS"}, rows)
	fmt.Printf("\n  %d reports, %d open\n\n", len(reports), open)
	return nil
}

func cmdWishlist(ctx context.Context, client *api.Client, args []string) error {
	if len(args) > 0 && args[0] == "status" {
		counts, err := client.WishlistStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		for _, status := range []string{
			model.WishlistPending, model.WishlistAvailable,
			model.WishlistFulfilled, model.WishlistCancelled,
		} {
			fmt.Printf("  %-12s %d\n", status, counts[status])
		}
		fmt.Println()
		return nil
	}

	items, err := client.ListWishlist(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No wishlist requests")
		return nil
	}

	rows := make([][]string, 0, len(items))
	for _, w := range items {
		rows = append(rows, []string{
			render.Truncate(w.ID, 12),
			w.Purpose,
			render.Truncate(w.Make+" "+w.Model, 24),
			render.Price(w.Budget),
			render.Status(w.Status),
			render.Time(w.CreatedAt),
		})
	}
	fmt.Println()
	render.Table(os.Stdout, []string{"ID", "PURPOSE", "VEHICLE", "BUDGET", "STATUS", "CREATED"}, rows)
	fmt.Println()
	return nil
}

func cmdSales(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 || args[0] != "top" {
		return fmt.Errorf("usage: sales top")
	}

	models, err := client.TopSellingModels(ctx)
	if err != nil {
		return err
	}
	if len(models) == 0 {
		fmt.Println("No sales data")
		return nil
	}

	rows := make([][]string, 0, len(models))
	for i, m := range models {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			m.Make + " " + m.Model,
			fmt.Sprintf("%d", m.Units),
			render.Price(m.Revenue),
		})
	}
	fmt.Println()
	render.Table(os.Stdout, []string{"#", "MODEL", "UNITS", "REVENUE"}, rows)
	fmt.Println()
	return nil
}
