package tui

import (
	"fmt"

	"github.com/fchimpan/gh-kusa-pong/internal/game"
)

type menuItem int

const (
	itemMode menuItem = iota
	itemDifficulty
	itemMaxPoints
	itemSide
	itemSound
	itemStart
	menuItemCount
)

var (
	modeChoices       = []game.Mode{game.ModeStandard, game.ModeSurvival}
	difficultyChoices = []game.Difficulty{game.DifficultyEasy, game.DifficultyMedium, game.DifficultyHard}
	sideChoices       = []game.Side{game.SideLeft, game.SideRight}
)

const maxPointsLimit = 99

type menuState struct {
	cursor menuItem
	cfg    game.Config
	err    string
}

func (s *menuState) up() {
	s.cursor = (s.cursor + menuItemCount - 1) % menuItemCount
}

func (s *menuState) down() {
	s.cursor = (s.cursor + 1) % menuItemCount
}

// change steps the value under the cursor by delta (-1 or +1).
func (s *menuState) change(delta int) {
	s.err = ""
	switch s.cursor {
	case itemMode:
		s.cfg.Mode = step(modeChoices, s.cfg.Mode, delta)
	case itemDifficulty:
		s.cfg.Difficulty = step(difficultyChoices, s.cfg.Difficulty, delta)
	case itemMaxPoints:
		n := s.cfg.MaxPoints + delta
		if n < 0 {
			n = maxPointsLimit
		} else if n > maxPointsLimit {
			n = 0
		}
		s.cfg.MaxPoints = n
	case itemSide:
		s.cfg.UserSide = step(sideChoices, s.cfg.UserSide, delta)
	case itemSound:
		s.cfg.Sound = !s.cfg.Sound
	}
}

func (s *menuState) label(item menuItem) (string, string) {
	switch item {
	case itemMode:
		return "mode", string(s.cfg.Mode)
	case itemDifficulty:
		return "difficulty", string(s.cfg.Difficulty)
	case itemMaxPoints:
		if s.cfg.Mode == game.ModeSurvival {
			return "max points", "n/a (3 lives)"
		}
		if s.cfg.MaxPoints == 0 {
			return "max points", "unlimited"
		}
		return "max points", fmt.Sprintf("%d", s.cfg.MaxPoints)
	case itemSide:
		return "your side", string(s.cfg.UserSide)
	case itemSound:
		if s.cfg.Sound {
			return "sound", "on"
		}
		return "sound", "off"
	default:
		return "start", ""
	}
}

// step cycles through choices. An unknown current value lands on the first
// choice.
func step[T comparable](choices []T, cur T, delta int) T {
	idx := -1
	for i, c := range choices {
		if c == cur {
			idx = i
			break
		}
	}
	if idx < 0 {
		return choices[0]
	}
	n := len(choices)
	return choices[((idx+delta)%n+n)%n]
}
