package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const appDir = "gh-kusa-pong"

// DefaultPath is the JSON store under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDir, "state.json"), nil
}

// Open selects a backend from target:
//
//	""                      JSON file at DefaultPath
//	"memory"                process-local map
//	"/path/x.json"          JSON file
//	"file:///path/x.json"   JSON file
//	"redis://host:6379/0"   Redis
//	"postgres://..."        PostgreSQL
func Open(ctx context.Context, target string) (Store, error) {
	target = strings.TrimSpace(target)
	switch {
	case target == "":
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		return OpenFile(p)
	case target == "memory" || target == "memory:":
		return NewMemoryStore(), nil
	case filepath.IsAbs(target) || !strings.Contains(target, "://"):
		return OpenFile(target)
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "file":
		return OpenFile(u.Path)
	case "redis", "rediss":
		return OpenRedis(ctx, target)
	case "postgres", "postgresql":
		return OpenSQL(ctx, target)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}
