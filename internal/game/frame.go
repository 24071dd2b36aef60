package game

import "time"

type Rect struct {
	X, Y, W, H float64
}

type FlashRect struct {
	Rect
	Edge      Side
	Remaining int
}

// Frame is a read-only snapshot for the renderer. It shares no memory with
// the simulation state.
type Frame struct {
	Width  float64
	Height float64

	Mode     Mode
	UserSide Side

	User     Rect
	Opponent Rect
	Ball     Rect

	UserScore     int
	OpponentScore int
	Lives         int
	Elapsed       time.Duration
	Multiplier    float64

	Flashes []FlashRect

	Status  Status
	Outcome Outcome
}

func (r *Rules) Frame(s State, now time.Time) Frame {
	f := Frame{
		Width:         BoardWidth,
		Height:        BoardHeight,
		Mode:          r.cfg.Mode,
		UserSide:      r.cfg.UserSide,
		User:          paddleRect(s.User),
		Opponent:      paddleRect(s.Opponent),
		Ball:          Rect{X: s.Ball.X, Y: s.Ball.Y, W: s.Ball.Size, H: s.Ball.Size},
		UserScore:     s.UserScore,
		OpponentScore: s.OpponentScore,
		Lives:         s.Lives,
		Elapsed:       r.Elapsed(s, now),
		Multiplier:    s.Multiplier,
		Status:        s.Status,
		Outcome:       s.Outcome,
	}
	if len(s.Flashes) > 0 {
		f.Flashes = make([]FlashRect, 0, len(s.Flashes))
		for _, fl := range s.Flashes {
			f.Flashes = append(f.Flashes, flashRect(fl))
		}
	}
	return f
}

func paddleRect(p Paddle) Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func flashRect(f Flash) FlashRect {
	x := 0.0
	if f.Edge == SideRight {
		x = BoardWidth - FlashWidth
	}
	y := f.CenterY - FlashHeight/2
	if y < 0 {
		y = 0
	}
	if y+FlashHeight > BoardHeight {
		y = BoardHeight - FlashHeight
	}
	return FlashRect{
		Rect:      Rect{X: x, Y: y, W: FlashWidth, H: FlashHeight},
		Edge:      f.Edge,
		Remaining: f.Remaining,
	}
}
