package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-kusa-pong/internal/config"
	"github.com/fchimpan/gh-kusa-pong/internal/game"
	"github.com/fchimpan/gh-kusa-pong/internal/store"
	"github.com/fchimpan/gh-kusa-pong/internal/tui"
)

type Deps struct {
	LoadEnv   func() config.Env
	OpenStore func(ctx context.Context, target string) (store.Store, error)
	RunTUI    func(opts tui.Options) error
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		LoadEnv:   config.Load,
		OpenStore: store.Open,
		RunTUI:    defaultRunTUI,
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

func NewRootCmd(deps Deps) *cobra.Command {
	defaults := game.DefaultConfig()
	var (
		difficulty  string
		mode        string
		maxPoints   int
		side        string
		sound       bool
		storeTarget string
		seed        uint64
		debug       bool
		freeze      bool
	)

	c := &cobra.Command{
		Use:          "kusa-pong",
		Short:        "Play Pong against the computer in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			env := loadEnv(deps)
			if !flags.Changed("store") {
				storeTarget = env.Store
			}
			if !flags.Changed("debug") {
				debug = env.Debug
			}
			if !flags.Changed("seed") {
				seed = env.Seed
			}
			if !flags.Changed("freeze-timers-on-pause") {
				freeze = env.FreezeTimersOnPause
			}

			if logFile := setupLogging(debug, env.LogDir); logFile != nil {
				defer logFile.Close()
			}

			if seed == 0 {
				seed = uint64(deps.Now().UnixNano())
			}

			// Flags beat saved settings; unset flags leave them alone.
			override := func(cfg *game.Config) error {
				if flags.Changed("difficulty") {
					d, err := game.ParseDifficulty(difficulty)
					if err != nil {
						return err
					}
					cfg.Difficulty = d
				}
				if flags.Changed("mode") {
					m, err := game.ParseMode(mode)
					if err != nil {
						return err
					}
					cfg.Mode = m
				}
				if flags.Changed("side") {
					s, err := game.ParseSide(side)
					if err != nil {
						return err
					}
					cfg.UserSide = s
				}
				if flags.Changed("max-points") {
					cfg.MaxPoints = maxPoints
				}
				if flags.Changed("sound") {
					cfg.Sound = sound
				}
				return nil
			}

			err := run(cmd.Context(), deps, runParams{
				StoreTarget: storeTarget,
				Seed:        seed,
				Freeze:      freeze,
				Override:    override,
			})
			if err != nil {
				if game.IsConfigError(err) {
					fmt.Fprintln(deps.Stderr, "hint: difficulty is easy|medium|hard, mode is standard|survival, side is left|right")
				}
				return err
			}
			return nil
		},
	}

	c.Flags().StringVarP(&difficulty, "difficulty", "d", string(defaults.Difficulty), "computer skill: easy, medium or hard")
	c.Flags().StringVarP(&mode, "mode", "m", string(defaults.Mode), "game mode: standard or survival")
	c.Flags().IntVarP(&maxPoints, "max-points", "n", defaults.MaxPoints, "points to win a standard match (0 plays forever)")
	c.Flags().StringVar(&side, "side", string(defaults.UserSide), "your side of the court: left or right")
	c.Flags().BoolVar(&sound, "sound", defaults.Sound, "play a ping on wall and paddle hits")
	c.Flags().Uint64Var(&seed, "seed", 0, "serve RNG seed (0 uses the clock)")
	c.Flags().BoolVar(&debug, "debug", false, "write a debug log to the cache dir")
	c.Flags().BoolVar(&freeze, "freeze-timers-on-pause", false, "stop the clock and speed ramp while paused")
	c.PersistentFlags().StringVar(&storeTarget, "store", "", "high score store: file path, memory, redis:// or postgres:// URL")

	c.AddCommand(newScoresCmd(deps, &storeTarget))

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}

func newScoresCmd(deps Deps, storeTarget *string) *cobra.Command {
	var reset bool
	c := &cobra.Command{
		Use:          "scores",
		Short:        "Show or reset saved high scores",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := *storeTarget
			if !cmd.Flags().Changed("store") {
				target = loadEnv(deps).Store
			}
			if deps.OpenStore == nil {
				return fmt.Errorf("deps.OpenStore is nil")
			}
			st, err := deps.OpenStore(cmd.Context(), target)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer st.Close()

			ctx := cmd.Context()
			scores := store.NewHighScores(st)
			if reset {
				for _, m := range []game.Mode{game.ModeStandard, game.ModeSurvival} {
					if err := scores.Reset(ctx, string(m)); err != nil {
						return fmt.Errorf("failed to reset %s high score: %w", m, err)
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "high scores reset")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "standard  %d\n", scores.Load(ctx, string(game.ModeStandard)))
			fmt.Fprintf(cmd.OutOrStdout(), "survival  %ds\n", scores.Load(ctx, string(game.ModeSurvival)))
			return nil
		},
	}
	c.Flags().BoolVar(&reset, "reset", false, "delete both high scores")
	return c
}

func loadEnv(deps Deps) config.Env {
	if deps.LoadEnv == nil {
		return config.Env{}
	}
	return deps.LoadEnv()
}
