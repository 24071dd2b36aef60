// Package store persists high scores and the last-used settings.
//
// Every backend is a flat string key-value store. Values are opaque to the
// backend; HighScores and the settings helpers own the encoding.
package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("store: key not found")
	ErrUnsupportedScheme = errors.New("store: unsupported scheme")
)

const (
	KeyStandardHighScore = "pongHighscore"
	KeySurvivalHighScore = "pongSurvivalHighscore"
	KeySettings          = "pongSettings"
)

type Store interface {
	// Get returns ErrNotFound when key has never been set.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
