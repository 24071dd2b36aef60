package game

import (
	"math/rand/v2"
	"time"
)

// Rules is the fixed per-match simulation: configuration, mode policy,
// opponent tracker and the serve RNG.
type Rules struct {
	cfg     Config
	policy  Policy
	tracker Tracker
	rng     *rand.Rand
}

func NewRules(cfg Config, seed uint64) (*Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := tiers[cfg.Difficulty]
	return &Rules{
		cfg:     cfg,
		policy:  policyFor(cfg),
		tracker: trackerFor(cfg, t.paddleSpeed),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

func (r *Rules) Config() Config { return r.cfg }

func (r *Rules) Policy() Policy { return r.policy }

func (r *Rules) Tracker() Tracker { return r.tracker }

// Initial returns an Idle state with paddles centered and the ball parked
// in the middle of the board.
func (r *Rules) Initial() State {
	t := tiers[r.cfg.Difficulty]
	s := State{
		User:        newPaddle(r.cfg.UserSide),
		Opponent:    newPaddle(r.cfg.UserSide.Opposite()),
		Ball:        Ball{X: BoardWidth/2 - BallSize/2, Y: BoardHeight/2 - BallSize/2, Size: BallSize},
		PaddleSpeed: t.paddleSpeed,
		BallSpeed:   t.ballSpeed,
		Multiplier:  1,
		Status:      StatusIdle,
	}
	if r.cfg.Mode == ModeSurvival {
		s.Lives = SurvivalLives
	}
	return s
}

// Step advances a running state by one tick. Non-running states are
// returned unchanged.
func (r *Rules) Step(s State, in Intent, now time.Time) (State, []Event) {
	if s.Status != StatusRunning {
		return s, nil
	}
	s = s.clone()
	var events []Event

	r.policy.Ramp(&s, now)

	movePaddle(&s.User, in, s.PaddleSpeed)
	integrate(&s.Ball)

	if bounceWalls(&s.Ball) {
		events = r.sound(events, SoundWall)
	}
	if overlaps(s.Ball, s.User) {
		deflect(&s.Ball, s.User, r.cfg.UserSide)
		events = r.sound(events, SoundPaddle)
	}
	if overlaps(s.Ball, s.Opponent) {
		deflect(&s.Ball, s.Opponent, r.cfg.UserSide.Opposite())
		events = r.sound(events, SoundPaddle)
	}

	r.tracker.Move(&s.Opponent, s.Ball)

	flashes := ageFlashes(s.Flashes)
	if edge, ok := exitedEdge(s.Ball); ok {
		events = append(events, r.policy.OnExit(&s, edge, r.cfg.UserSide)...)
		flashes = append(flashes, Flash{Edge: edge, CenterY: s.Ball.CenterY(), Remaining: flashTicks})
		serve(&s.Ball, r.policy.ServeSpeed(s), r.rng)
	}
	s.Flashes = flashes

	if outcome, done := r.policy.Terminal(s); done {
		var ended []Event
		s, ended = r.finish(s, outcome, now)
		events = append(events, ended...)
	}
	return s, events
}

// Serve starts the first rally of an Idle state.
func (r *Rules) Serve(s State, now time.Time) State {
	s = s.clone()
	serve(&s.Ball, r.policy.ServeSpeed(s), r.rng)
	s.StartedAt = now
	s.LastRamp = now
	s.Status = StatusRunning
	return s
}

func (r *Rules) Pause(s State, now time.Time) State {
	s.Status = StatusPaused
	s.PausedAt = now
	return s
}

func (r *Rules) Resume(s State, now time.Time) State {
	if r.cfg.FreezeTimersOnPause {
		d := now.Sub(s.PausedAt)
		if d > 0 {
			s.StartedAt = s.StartedAt.Add(d)
			s.LastRamp = s.LastRamp.Add(d)
		}
	}
	s.Status = StatusRunning
	s.PausedAt = time.Time{}
	return s
}

func (r *Rules) finish(s State, outcome Outcome, now time.Time) (State, []Event) {
	elapsed := r.Elapsed(s, now)
	s.Status = StatusEnded
	s.Outcome = outcome
	s.EndedAt = now
	if r.cfg.FreezeTimersOnPause && !s.PausedAt.IsZero() {
		s.EndedAt = s.PausedAt
	}

	result := r.policy.Result(s, elapsed)
	events := []Event{MatchEnded{
		Mode:    r.cfg.Mode,
		Outcome: outcome,
		Summary: r.policy.Summary(s, outcome, result),
		Result:  result,
	}}
	if outcome != OutcomeAborted && result > r.cfg.HighScore {
		events = append(events, HighScoreBeaten{Mode: r.cfg.Mode, Value: result, Previous: r.cfg.HighScore})
	}
	return s, events
}

// Elapsed is the match time at now under the configured pause policy.
func (r *Rules) Elapsed(s State, now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	end := now
	switch {
	case s.Status == StatusEnded:
		end = s.EndedAt
	case s.Status == StatusPaused && r.cfg.FreezeTimersOnPause:
		end = s.PausedAt
	}
	if d := end.Sub(s.StartedAt); d > 0 {
		return d
	}
	return 0
}

func (r *Rules) sound(events []Event, kind SoundKind) []Event {
	if !r.cfg.Sound {
		return events
	}
	return append(events, SoundEvent{Kind: kind})
}

func ageFlashes(in []Flash) []Flash {
	out := make([]Flash, 0, len(in)+1)
	for _, f := range in {
		f.Remaining--
		if f.Remaining > 0 {
			out = append(out, f)
		}
	}
	return out
}
