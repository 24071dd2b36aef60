package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

func HighScoreKey(mode string) string {
	if mode == "survival" {
		return KeySurvivalHighScore
	}
	return KeyStandardHighScore
}

func EncodeHighScore(v int) string { return strconv.Itoa(v) }

// DecodeHighScore parses a stored value. Garbage decodes to 0 with an error
// so callers can degrade instead of failing.
func DecodeHighScore(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid high score %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid high score %q: negative", s)
	}
	return v, nil
}

// HighScores keeps one best value per mode. Each mode is read from the store
// at most once; writes happen only for strict improvements.
type HighScores struct {
	store Store
	best  map[string]int
}

func NewHighScores(s Store) *HighScores {
	return &HighScores{store: s, best: make(map[string]int)}
}

// Load returns the best value for mode. Storage failures are logged and
// read as 0.
func (h *HighScores) Load(ctx context.Context, mode string) int {
	if v, ok := h.best[mode]; ok {
		return v
	}
	v := 0
	raw, err := h.store.Get(ctx, HighScoreKey(mode))
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		log.Printf("highscore: read %s failed: %v", mode, err)
	default:
		if v, err = DecodeHighScore(raw); err != nil {
			log.Printf("highscore: %v", err)
		}
	}
	h.best[mode] = v
	return v
}

// Submit records value when it strictly beats the current best. The new best
// is kept in memory even if the write fails.
func (h *HighScores) Submit(ctx context.Context, mode string, value int) (bool, error) {
	if value <= h.Load(ctx, mode) {
		return false, nil
	}
	h.best[mode] = value
	if err := h.store.Set(ctx, HighScoreKey(mode), EncodeHighScore(value)); err != nil {
		return true, fmt.Errorf("failed to save %s high score: %w", mode, err)
	}
	return true, nil
}

func (h *HighScores) Reset(ctx context.Context, mode string) error {
	h.best[mode] = 0
	return h.store.Delete(ctx, HighScoreKey(mode))
}
