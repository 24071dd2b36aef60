package cmd

import (
	"github.com/fchimpan/gh-kusa-pong/internal/game"
	"github.com/fchimpan/gh-kusa-pong/internal/store"
)

// ConfigFromSettings overlays saved settings on base. Values that no longer
// parse are skipped so a stale settings record never blocks startup.
func ConfigFromSettings(base game.Config, s store.Settings) game.Config {
	cfg := base
	if d, err := game.ParseDifficulty(s.Difficulty); err == nil {
		cfg.Difficulty = d
	}
	if m, err := game.ParseMode(s.GameMode); err == nil {
		cfg.Mode = m
	}
	if side, err := game.ParseSide(s.UserSide); err == nil {
		cfg.UserSide = side
	}
	if s.MaxPoints >= 0 {
		cfg.MaxPoints = s.MaxPoints
	}
	cfg.Sound = s.SoundOn
	return cfg
}
