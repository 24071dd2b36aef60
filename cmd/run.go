package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/fchimpan/gh-kusa-pong/internal/game"
	"github.com/fchimpan/gh-kusa-pong/internal/store"
	"github.com/fchimpan/gh-kusa-pong/internal/tui"
)

type runParams struct {
	StoreTarget string
	Seed        uint64
	Freeze      bool
	// Override applies explicitly set flags on top of the saved settings.
	Override func(cfg *game.Config) error
}

func run(ctx context.Context, deps Deps, p runParams) error {
	if deps.OpenStore == nil {
		return fmt.Errorf("deps.OpenStore is nil")
	}
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}

	st, err := deps.OpenStore(ctx, p.StoreTarget)
	if err != nil {
		// Scores are a nicety; play on without persistence.
		log.Printf("store: %v, using memory", err)
		if deps.Stderr != nil {
			fmt.Fprintf(deps.Stderr, "warning: %v (high scores will not be saved)\n", err)
		}
		st = store.NewMemoryStore()
	}
	defer st.Close()

	cfg := game.DefaultConfig()
	saved, ok, err := store.LoadSettings(ctx, st)
	switch {
	case err != nil:
		log.Printf("settings: %v", err)
	case ok:
		cfg = ConfigFromSettings(cfg, saved)
	}

	if p.Override != nil {
		if err := p.Override(&cfg); err != nil {
			return err
		}
	}
	cfg.FreezeTimersOnPause = p.Freeze
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("run: mode=%s difficulty=%s max=%d side=%s sound=%v seed=%d", cfg.Mode, cfg.Difficulty, cfg.MaxPoints, cfg.UserSide, cfg.Sound, p.Seed)
	return deps.RunTUI(tui.Options{
		Config: cfg,
		Seed:   p.Seed,
		Store:  st,
		Now:    deps.Now,
	})
}
