package game

import "time"

// Board geometry in board units. Velocities are board units per tick.
const (
	BoardWidth   = 800.0
	BoardHeight  = 400.0
	PaddleWidth  = 10.0
	PaddleHeight = 80.0
	BallSize     = 10.0

	FlashWidth  = 4.0
	FlashHeight = 40.0
	flashTicks  = 20

	spinFactor = 0.1

	standardRampEvery  = 60 * time.Second
	standardRampFactor = 1.2

	survivalRampEvery = 10 * time.Second
	survivalRampStep  = 0.1
	SurvivalLives     = 3
	survivalAIBonus   = 2
)

type Paddle struct {
	X, Y float64
	W, H float64
	DY   float64
	// PrevY is the position at the start of the current tick.
	PrevY float64
}

func newPaddle(side Side) Paddle {
	x := 0.0
	if side == SideRight {
		x = BoardWidth - PaddleWidth
	}
	y := BoardHeight/2 - PaddleHeight/2
	return Paddle{X: x, Y: y, W: PaddleWidth, H: PaddleHeight, PrevY: y}
}

func (p Paddle) CenterY() float64 { return p.Y + p.H/2 }

func (p *Paddle) clamp() {
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.H > BoardHeight {
		p.Y = BoardHeight - p.H
	}
}

type Ball struct {
	X, Y   float64
	Size   float64
	DX, DY float64
}

func (b Ball) CenterY() float64 { return b.Y + b.Size/2 }

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeAborted:
		return "aborted"
	default:
		return "none"
	}
}

// Flash marks the edge where the ball last left the board. Cosmetic only.
type Flash struct {
	Edge      Side
	CenterY   float64
	Remaining int
}

// State is everything that changes during a match. Rules.Step takes a State
// value and returns the next one.
type State struct {
	User     Paddle
	Opponent Paddle
	Ball     Ball

	UserScore     int
	OpponentScore int
	Lives         int

	PaddleSpeed float64
	BallSpeed   float64
	// Multiplier scales BallSpeed in survival mode. Never decreases.
	Multiplier float64

	Status  Status
	Outcome Outcome

	StartedAt time.Time
	LastRamp  time.Time
	PausedAt  time.Time
	EndedAt   time.Time

	Flashes []Flash
}

func (s State) clone() State {
	if s.Flashes != nil {
		s.Flashes = append([]Flash(nil), s.Flashes...)
	}
	return s
}
