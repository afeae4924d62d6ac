// ABOUTME: Session identity extraction from the backend-issued JWT
// ABOUTME: Decodes claims without signature verification; only the backend holds the secret

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrNoToken      = errors.New("no session token configured")
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// TokenEnvVar is checked before the token file.
const TokenEnvVar = "MOTORVIA_TOKEN"

// Identity is the authenticated user as asserted by the backend token.
type Identity struct {
	UserID      string
	DisplayName string
	Roles       []string
}

// IsAdmin reports whether the identity carries the admin or owner role.
func (id *Identity) IsAdmin() bool {
	for _, r := range id.Roles {
		if r == "admin" || r == "owner" {
			return true
		}
	}
	return false
}

// LoadToken returns the raw token from the environment or, failing that,
// from the given file path (typically ~/.config/motorvia/token).
func LoadToken(tokenPath string) (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}
	if tokenPath == "" {
		return "", ErrNoToken
	}
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// DefaultTokenPath returns the XDG location of the token file.
func DefaultTokenPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "motorvia", "token")
}

// Parse extracts the identity claims from a backend-issued JWT. The
// signature is NOT verified; the signing secret lives server-side and the
// backend re-validates the token on every request; the client only needs
// the identity to render with. Expiry is still enforced locally.
func Parse(tokenString string) (*Identity, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if time.Now().After(exp.Time) {
			return nil, ErrExpiredToken
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	id := &Identity{UserID: sub}

	if name, ok := claims["name"].(string); ok {
		id.DisplayName = name
	}

	// "roles" arrives as []any of strings when present
	if raw, ok := claims["roles"].([]any); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				id.Roles = append(id.Roles, s)
			}
		}
	}

	return id, nil
}
