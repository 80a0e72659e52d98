// Package session persists the authenticated session between invocations.
// The session file holds the bearer token and the identity claims extracted
// from it; it lives in the state directory with owner-only permissions.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pelletier/go-toml/v2"

	"github.com/resourcehub/hubctl/internal/config"
)

const sessionFile = "session" + config.FileExtTOML

// Session is the persisted authentication state.
type Session struct {
	Token     string    `toml:"token"`
	Email     string    `toml:"email"`
	Roles     []string  `toml:"roles"`
	ExpiresAt time.Time `toml:"expires_at,omitempty"`
	ServerURL string    `toml:"server_url"`
}

// IsAuthenticated reports whether a token is present and not known to be
// expired. Expiry is advisory; the server remains the authority.
func (s *Session) IsAuthenticated() bool {
	if s == nil || s.Token == "" {
		return false
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		return false
	}
	return true
}

// HasRole reports whether the session carries the named role.
func (s *Session) HasRole(role string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Path returns the session file location under the state directory.
func Path() string {
	return filepath.Join(config.Get("state_dir", ""), sessionFile)
}

// Load reads the persisted session. A missing file yields an empty session,
// not an error.
func Load() (*Session, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &s, nil
}

// Save writes the session file with owner-only permissions.
func Save(s *Session) error {
	dir := config.Get("state_dir", "")
	if err := os.MkdirAll(dir, config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func Clear() error {
	if err := os.Remove(Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Claims is the subset of token claims the client uses.
type Claims struct {
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

type tokenClaims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// ParseClaims extracts identity claims from a bearer token without verifying
// the signature. The client only needs them for display and for hiding
// actions the server would reject anyway; verification stays server-side.
func ParseClaims(token string) (Claims, error) {
	var tc tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	claims := Claims{Email: tc.Email, Roles: tc.Roles}
	if tc.Email == "" {
		claims.Email = tc.Subject
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}

// FromToken builds a session from a freshly issued token.
func FromToken(token, serverURL string) (*Session, error) {
	claims, err := ParseClaims(token)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		Email:     claims.Email,
		Roles:     claims.Roles,
		ExpiresAt: claims.ExpiresAt,
		ServerURL: serverURL,
	}, nil
}
