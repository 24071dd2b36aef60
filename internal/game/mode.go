package game

import (
	"fmt"
	"math"
	"time"
)

// Policy is the mode-specific part of a match, selected once at start.
type Policy interface {
	Mode() Mode
	// OnExit attributes a ball exit through edge. Exactly one counter
	// changes per call.
	OnExit(s *State, edge, userSide Side) []Event
	Terminal(s State) (Outcome, bool)
	Ramp(s *State, now time.Time)
	ServeSpeed(s State) float64
	Result(s State, elapsed time.Duration) int
	Summary(s State, outcome Outcome, result int) string
}

func policyFor(cfg Config) Policy {
	if cfg.Mode == ModeSurvival {
		return Survival{Lives: SurvivalLives}
	}
	return Standard{MaxPoints: cfg.MaxPoints}
}

// Standard is first-to-MaxPoints. MaxPoints 0 never ends by score.
type Standard struct {
	MaxPoints int
}

func (Standard) Mode() Mode { return ModeStandard }

func (Standard) OnExit(s *State, edge, userSide Side) []Event {
	scorer := PlayerUser
	if edge == userSide {
		scorer = PlayerOpponent
		s.OpponentScore++
	} else {
		s.UserScore++
	}
	return []Event{PointScored{Player: scorer, UserScore: s.UserScore, OpponentScore: s.OpponentScore}}
}

func (p Standard) Terminal(s State) (Outcome, bool) {
	if p.MaxPoints <= 0 {
		return OutcomeNone, false
	}
	if s.UserScore >= p.MaxPoints {
		return OutcomeWin, true
	}
	if s.OpponentScore >= p.MaxPoints {
		return OutcomeLoss, true
	}
	return OutcomeNone, false
}

// Ramp scales both velocity components once per elapsed interval. Signs are
// preserved.
func (Standard) Ramp(s *State, now time.Time) {
	if now.Sub(s.LastRamp) < standardRampEvery {
		return
	}
	s.Ball.DX *= standardRampFactor
	s.Ball.DY *= standardRampFactor
	s.LastRamp = now
}

func (Standard) ServeSpeed(s State) float64 { return s.BallSpeed }

func (Standard) Result(s State, _ time.Duration) int { return s.UserScore }

func (Standard) Summary(s State, outcome Outcome, _ int) string {
	switch outcome {
	case OutcomeWin:
		return fmt.Sprintf("You won %d:%d.", s.UserScore, s.OpponentScore)
	case OutcomeLoss:
		return fmt.Sprintf("The computer won %d:%d.", s.OpponentScore, s.UserScore)
	default:
		return fmt.Sprintf("Game cancelled at %d:%d.", s.UserScore, s.OpponentScore)
	}
}

// Survival tracks only the user's lives. Exits on the opponent's edge count
// as returns in UserScore.
type Survival struct {
	Lives int
}

func (Survival) Mode() Mode { return ModeSurvival }

func (Survival) OnExit(s *State, edge, userSide Side) []Event {
	if edge == userSide {
		s.Lives--
		return []Event{LifeLost{Remaining: s.Lives}}
	}
	s.UserScore++
	return []Event{PointScored{Player: PlayerUser, UserScore: s.UserScore, OpponentScore: s.OpponentScore}}
}

func (Survival) Terminal(s State) (Outcome, bool) {
	if s.Lives <= 0 {
		return OutcomeLoss, true
	}
	return OutcomeNone, false
}

// Ramp raises the multiplier once per elapsed interval and recomputes the
// velocity from the base speed, which discards any spin distortion.
func (Survival) Ramp(s *State, now time.Time) {
	ramped := false
	for now.Sub(s.LastRamp) >= survivalRampEvery {
		s.Multiplier += survivalRampStep
		s.LastRamp = s.LastRamp.Add(survivalRampEvery)
		ramped = true
	}
	if !ramped {
		return
	}
	v := s.BallSpeed * s.Multiplier
	s.Ball.DX = math.Copysign(v, s.Ball.DX)
	s.Ball.DY = math.Copysign(v, s.Ball.DY)
}

func (Survival) ServeSpeed(s State) float64 { return s.BallSpeed * s.Multiplier }

func (Survival) Result(_ State, elapsed time.Duration) int {
	return int(elapsed / time.Second)
}

func (Survival) Summary(_ State, outcome Outcome, result int) string {
	if outcome == OutcomeAborted {
		return fmt.Sprintf("Game cancelled after %d seconds.", result)
	}
	return fmt.Sprintf("You survived %d seconds.", result)
}
