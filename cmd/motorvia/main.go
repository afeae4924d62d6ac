// ABOUTME: Interactive terminal console for the motorvia marketplace backend.
// ABOUTME: Browses vehicles, rentals, reports, and wishlists with JWT auth.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/motorvia/motorvia-console/internal/api"
	"github.com/motorvia/motorvia-console/internal/config"
	"github.com/motorvia/motorvia-console/internal/listview"
	"github.com/motorvia/motorvia-console/internal/render"
	"github.com/motorvia/motorvia-console/internal/screen"
	"github.com/motorvia/motorvia-console/internal/session"
	"github.com/motorvia/motorvia-console/internal/snapshot"
)

func main() {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	configPath := flag.String("config", defaultConfigPath(), "Config file path")
	backend := flag.String("backend", "", "Backend URL (overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *configPath, *backend); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	fmt.Println("\nGoodbye!")
}

func defaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "motorvia.yaml"
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "motorvia", "config.yaml")
}

// loadConfig reads the config file when present and otherwise builds a
// default config from the environment.
func loadConfig(path, backendOverride string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		baseURL := os.Getenv("MOTORVIA_BACKEND")
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		cfg = &config.Config{Backend: config.BackendConfig{BaseURL: baseURL}}
	}
	if backendOverride != "" {
		cfg.Backend.BaseURL = backendOverride
	}
	return cfg, nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// The console shares the terminal with its own output, so
		// anything below warn stays quiet unless asked for.
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// app holds everything the command loop needs.
type app struct {
	cfg     *config.Config
	client  *api.Client
	ident   *session.Identity
	snap    *snapshot.Store
	presets *config.Presets
	in      *input
}

func run(ctx context.Context, configPath, backendOverride string) error {
	cfg, err := loadConfig(configPath, backendOverride)
	if err != nil {
		return err
	}
	slog.SetDefault(setupLogger(cfg.Logging))

	tokenPath := cfg.Session.TokenPath
	if tokenPath == "" {
		tokenPath = session.DefaultTokenPath()
	}
	token, err := session.LoadToken(tokenPath)
	if err != nil && !errors.Is(err, session.ErrNoToken) {
		return fmt.Errorf("loading token: %w", err)
	}

	var ident *session.Identity
	if token != "" {
		ident, err = session.Parse(token)
		if err != nil {
			return fmt.Errorf("parsing session token: %w", err)
		}
		ctx = session.WithIdentity(ctx, ident)
	}

	var snap *snapshot.Store
	if cfg.Snapshot.Enabled {
		snap, err = snapshot.Open(cfg.Snapshot.Path)
		if err != nil {
			return fmt.Errorf("opening snapshot store: %w", err)
		}
		defer snap.Close()
	}

	presets, err := config.LoadPresets(config.DefaultPresetsPath())
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	a := &app{
		cfg:     cfg,
		client:  api.New(cfg.Backend.BaseURL, token, cfg.Backend.Timeout),
		ident:   ident,
		snap:    snap,
		presets: presets,
		in:      newInput(),
	}

	fmt.Printf("motorvia console connected to %s\n", cfg.Backend.BaseURL)
	if ident != nil {
		fmt.Printf("Signed in as %s\n", ident.DisplayName)
	} else {
		fmt.Printf("Not signed in (set %s or %s)\n", session.TokenEnvVar, session.DefaultTokenPath())
	}
	fmt.Println("Type /help for commands. Ctrl+C to quit.")
	fmt.Println()

	return a.loop(ctx)
}

func (a *app) loop(ctx context.Context) error {
	for {
		line, err := a.in.line(ctx, "> ")
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "/quit", "/exit", "/q":
			return nil
		case "/help":
			printHelp()
		case "/me":
			a.printIdentity()
		case "/vehicles":
			err = a.browseVehicles(ctx)
		case "/sales":
			err = a.browseSales(ctx)
		case "/rentals":
			err = a.browseRentals(ctx)
		case "/transactions":
			err = a.browseTransactions(ctx)
		case "/lostfound":
			err = a.browseLostFound(ctx)
		case "/wishlist":
			err = a.browseWishlist(ctx)
		case "/dashboard":
			err = a.showDashboard(ctx)
		case "/activity":
			err = a.showActivity(ctx)
		case "/preset":
			err = a.applyPreset(ctx, arg)
		default:
			fmt.Printf("Unknown command: %s (try /help)\n", cmd)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			color.Red("[error] %v", err)
		}
		fmt.Println()
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  /vehicles          Browse vehicles for sale")
	fmt.Println("  /sales             Your own listings")
	fmt.Println("  /rentals           Your bookings")
	fmt.Println("  /transactions      Payment history")
	fmt.Println("  /lostfound         Lost and found reports")
	fmt.Println("  /wishlist          Wanted vehicles")
	fmt.Println("  /dashboard         Notifications and top sellers")
	fmt.Println("  /activity          Recent local mutations")
	fmt.Println("  /preset <name>     Open a screen with a saved filter preset")
	fmt.Println("  /me                Show your identity")
	fmt.Println("  /quit              Exit")
}

func (a *app) printIdentity() {
	if a.ident == nil {
		fmt.Println("Not signed in")
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Println("  Identity")
	cyan.Println("  --------")
	fmt.Printf("  User ID:   %s\n", a.ident.UserID)
	fmt.Printf("  Name:      %s\n", a.ident.DisplayName)
	if len(a.ident.Roles) > 0 {
		fmt.Printf("  Roles:     %s\n", strings.Join(a.ident.Roles, ", "))
	}
	if a.ident.IsAdmin() {
		color.Green("  Admin:     yes")
	}
}

// requireIdentity guards screens that are scoped to the signed-in user.
func (a *app) requireIdentity() (*session.Identity, error) {
	if a.ident == nil {
		return nil, errors.New("sign in first: set " + session.TokenEnvVar)
	}
	return a.ident, nil
}

// screenDef describes how one record type renders and edits.
type screenDef[T any] struct {
	headers []string
	row     func(T) []string
	detail  func(T)
	// set applies one field=value edit to a draft; nil means the
	// screen has no editable fields.
	set func(*T, string, string) error
	// extra handles screen-specific commands; returns false when the
	// command is not recognized.
	extra func(ctx context.Context, a *app, s *screen.Screen[T], cmd, arg string) (bool, error)
	// extraHelp lines appended to the in-screen help.
	extraHelp []string
}

// browse runs the shared in-screen loop: fetch, then accept filter,
// sort, page, view, edit, and delete commands until back/EOF.
func browse[T any](ctx context.Context, a *app, s *screen.Screen[T], def screenDef[T]) error {
	// Paint from the local snapshot first so an unreachable backend
	// still shows last-known-good data.
	var cached []T
	if _, err := a.snap.Load(ctx, s.Name(), &cached); err == nil && len(cached) > 0 {
		s.Store().Replace(cached)
	}
	if a.snap != nil {
		events, subID := s.Store().Subscribe()
		defer s.Store().Unsubscribe(subID)
		go a.snap.Watch(ctx, events)
	}

	reload := func() {
		if err := s.Load(ctx); err != nil {
			color.Yellow("[offline] %v; showing last-known-good data", err)
			return
		}
		if err := a.snap.Save(ctx, s.Name(), s.Store().Items(), s.Store().Len()); err != nil {
			slog.Warn("saving snapshot", "resource", s.Name(), "error", err)
		}
	}
	reload()
	printPage(s, def)

	for {
		line, err := a.in.line(ctx, fmt.Sprintf("%s> ", s.Name()))
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}
			return err
		}
		if line == "" {
			printPage(s, def)
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "back", "b", "q":
			return nil
		case "help", "?":
			printScreenHelp(def)
			continue
		case "reload":
			reload()
		case "search":
			s.SetSearch(arg)
		case "filter":
			name, value, ok := strings.Cut(arg, " ")
			if !ok {
				fmt.Println("Usage: filter <name> <value|all>")
				continue
			}
			s.SetFilter(name, strings.TrimSpace(value))
		case "date":
			if err := applyDateFilter(s, arg); err != nil {
				fmt.Println(err)
				continue
			}
		case "sort":
			key := listview.ParseSortKey(arg)
			if key == listview.SortNone && arg != "" && arg != "none" {
				fmt.Println("Usage: sort price-asc|price-desc|newest|oldest|none")
				continue
			}
			s.SetSort(key)
		case "page":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("Usage: page <n>")
				continue
			}
			s.SetPage(n)
		case "next":
			s.SetPage(s.State().Page + 1)
		case "prev":
			s.SetPage(s.State().Page - 1)
		case "view":
			item, err := s.View(arg)
			if err != nil {
				color.Red("[error] %v", err)
				continue
			}
			def.detail(item)
			s.Back()
			continue
		case "edit":
			if err := editFlow(ctx, a, s, def, arg); err != nil {
				color.Red("[error] %v", err)
				continue
			}
		case "delete":
			if err := deleteFlow(ctx, a, s, arg); err != nil {
				color.Red("[error] %v", err)
				continue
			}
		default:
			if def.extra != nil {
				handled, err := def.extra(ctx, a, s, cmd, arg)
				if err != nil {
					color.Red("[error] %v", err)
					continue
				}
				if handled {
					break
				}
			}
			fmt.Printf("Unknown command: %s (try help)\n", cmd)
			continue
		}
		printPage(s, def)
	}
}

func printScreenHelp[T any](def screenDef[T]) {
	fmt.Println("Screen commands:")
	fmt.Println("  search <text>            Substring search (empty to clear)")
	fmt.Println("  filter <name> <value>    Set a filter; value 'all' clears it")
	fmt.Println("  date <name> last-month|last-year|clear")
	fmt.Println("  sort price-asc|price-desc|newest|oldest")
	fmt.Println("  page <n> | next | prev   Move between pages")
	fmt.Println("  view <id>                Show record details")
	fmt.Println("  edit <id>                Edit a record (field=value lines)")
	fmt.Println("  delete <id>              Delete after confirmation")
	fmt.Println("  reload                   Refetch from the backend")
	fmt.Println("  back                     Return to the main prompt")
	for _, line := range def.extraHelp {
		fmt.Println(line)
	}
}

func printPage[T any](s *screen.Screen[T], def screenDef[T]) {
	r := s.Visible()
	if len(r.Visible) == 0 {
		fmt.Println("No matching records")
		return
	}

	rows := make([][]string, 0, len(r.PageItems))
	for _, item := range r.PageItems {
		rows = append(rows, def.row(item))
	}
	render.Table(os.Stdout, def.headers, rows)
	fmt.Println("  " + render.Footer(r.Page, r.TotalPages, len(r.Visible)))
}

func applyDateFilter[T any](s *screen.Screen[T], arg string) error {
	name, window, ok := strings.Cut(arg, " ")
	if !ok {
		return errors.New("usage: date <name> last-month|last-year|clear")
	}
	switch strings.TrimSpace(window) {
	case "last-month":
		s.SetDateFilter(name, listview.LastMonth(time.Now()))
	case "last-year":
		s.SetDateFilter(name, listview.LastYear(time.Now()))
	case "clear":
		s.ClearDateFilter(name)
	default:
		return errors.New("usage: date <name> last-month|last-year|clear")
	}
	return nil
}

// editFlow opens a draft and applies field=value lines until a blank
// line saves or "cancel" discards.
func editFlow[T any](ctx context.Context, a *app, s *screen.Screen[T], def screenDef[T], id string) error {
	if def.set == nil {
		return screen.ErrUnsupported
	}
	if id == "" {
		return errors.New("usage: edit <id>")
	}
	if err := s.BeginEdit(id); err != nil {
		return err
	}

	fmt.Println("Editing. Enter field=value lines; blank line saves, 'cancel' discards.")
	for {
		line, err := a.in.line(ctx, "edit> ")
		if err != nil {
			s.CancelEdit()
			return err
		}
		if line == "" {
			if err := s.SaveEdit(ctx); err != nil {
				// Draft stays open so the edit is not lost.
				color.Red("[error] save failed: %v (draft kept, blank line retries)", err)
				continue
			}
			fmt.Println("Saved")
			return nil
		}
		if line == "cancel" {
			s.CancelEdit()
			fmt.Println("Discarded")
			return nil
		}

		field, value, ok := strings.Cut(line, "=")
		if !ok {
			fmt.Println("Expected field=value")
			continue
		}
		draft, err := s.Draft()
		if err != nil {
			return err
		}
		if err := def.set(draft, strings.TrimSpace(field), strings.TrimSpace(value)); err != nil {
			fmt.Printf("%v\n", err)
		}
	}
}

// deleteFlow asks for confirmation before issuing the delete.
func deleteFlow[T any](ctx context.Context, a *app, s *screen.Screen[T], id string) error {
	if id == "" {
		return errors.New("usage: delete <id>")
	}
	if err := s.BeginDelete(id); err != nil {
		return err
	}

	line, err := a.in.line(ctx, fmt.Sprintf("Delete %s? [y/N] ", id))
	if err != nil {
		s.CancelDelete()
		return err
	}
	if strings.ToLower(line) != "y" && strings.ToLower(line) != "yes" {
		s.CancelDelete()
		fmt.Println("Kept")
		return nil
	}
	if err := s.ConfirmDelete(ctx); err != nil {
		s.CancelDelete()
		return err
	}
	fmt.Println("Deleted")
	return nil
}
