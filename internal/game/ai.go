package game

import "math"

// Tracker moves the opponent paddle toward the ball with bounded rate and
// deliberate error: it blends a fraction of the gap per tick, ignores gaps
// inside the deadband and never moves more than Speed from PrevY.
type Tracker struct {
	Speed    float64
	Blend    float64
	Deadband float64
}

func trackerFor(cfg Config, paddleSpeed float64) Tracker {
	if cfg.Mode == ModeSurvival {
		return Tracker{Speed: paddleSpeed + survivalAIBonus, Blend: 0.9}
	}
	switch cfg.Difficulty {
	case DifficultyEasy:
		return Tracker{Speed: paddleSpeed - 3, Blend: 0.3, Deadband: 10}
	case DifficultyHard:
		return Tracker{Speed: paddleSpeed, Blend: 0.7, Deadband: 2}
	default:
		return Tracker{Speed: paddleSpeed - 2, Blend: 0.5, Deadband: 5}
	}
}

func (t Tracker) Move(p *Paddle, b Ball) {
	p.PrevY = p.Y
	target := b.CenterY() - p.H/2
	gap := target - p.Y
	if gap == 0 || math.Abs(gap) <= t.Deadband {
		p.DY = 0
		return
	}

	next := p.Y + gap*t.Blend
	if next > p.PrevY+t.Speed {
		next = p.PrevY + t.Speed
	} else if next < p.PrevY-t.Speed {
		next = p.PrevY - t.Speed
	}
	p.Y = next
	p.clamp()
	p.DY = p.Y - p.PrevY
}
