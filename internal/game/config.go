package game

import (
	"strconv"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Mode string

const (
	ModeStandard Mode = "standard"
	ModeSurvival Mode = "survival"
)

// Side is the board edge a paddle defends. It is fixed for a match.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

type tier struct {
	paddleSpeed float64
	ballSpeed   float64
}

var tiers = map[Difficulty]tier{
	DifficultyEasy:   {paddleSpeed: 5, ballSpeed: 4},
	DifficultyMedium: {paddleSpeed: 7, ballSpeed: 5},
	DifficultyHard:   {paddleSpeed: 9, ballSpeed: 6},
}

// Config is the match configuration. It is read once at match start and
// never changes while the match runs.
type Config struct {
	Difficulty Difficulty
	Mode       Mode
	// MaxPoints ends a standard match when either side reaches it. 0 means
	// the match only ends by abort.
	MaxPoints int
	UserSide  Side
	Sound     bool

	// HighScore is the stored best result for Mode, read at configuration time.
	HighScore int

	// FreezeTimersOnPause shifts the ramp anchor and the elapsed-time origin
	// by the paused duration on resume. When false, wall-clock time spent in
	// pause still counts toward ramps and survival time.
	FreezeTimersOnPause bool
}

func DefaultConfig() Config {
	return Config{
		Difficulty: DifficultyMedium,
		Mode:       ModeStandard,
		MaxPoints:  5,
		UserSide:   SideLeft,
		Sound:      true,
	}
}

func (c Config) Validate() error {
	if _, ok := tiers[c.Difficulty]; !ok {
		return &ConfigError{Field: "difficulty", Value: string(c.Difficulty), cause: ErrUnconfiguredDifficulty}
	}
	if c.Mode != ModeStandard && c.Mode != ModeSurvival {
		return &ConfigError{Field: "mode", Value: string(c.Mode)}
	}
	if c.UserSide != SideLeft && c.UserSide != SideRight {
		return &ConfigError{Field: "side", Value: string(c.UserSide)}
	}
	if c.MaxPoints < 0 {
		return &ConfigError{Field: "max points", Value: strconv.Itoa(c.MaxPoints)}
	}
	return nil
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(normalize(s))
	if _, ok := tiers[d]; !ok {
		return "", &ConfigError{Field: "difficulty", Value: s, cause: ErrUnconfiguredDifficulty}
	}
	return d, nil
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(normalize(s)); m {
	case ModeStandard, ModeSurvival:
		return m, nil
	}
	return "", &ConfigError{Field: "mode", Value: s}
}

func ParseSide(s string) (Side, error) {
	switch side := Side(normalize(s)); side {
	case SideLeft, SideRight:
		return side, nil
	}
	return "", &ConfigError{Field: "side", Value: s}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
