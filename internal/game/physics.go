package game

import (
	"math"
	"math/rand/v2"
)

func serve(b *Ball, speed float64, rng *rand.Rand) {
	b.X = BoardWidth/2 - b.Size/2
	b.Y = BoardHeight/2 - b.Size/2
	b.DX = randomSign(rng) * speed
	b.DY = randomSign(rng) * speed
}

func randomSign(rng *rand.Rand) float64 {
	if rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

func movePaddle(p *Paddle, in Intent, speed float64) {
	p.PrevY = p.Y
	switch in.Kind {
	case IntentUp:
		p.DY = -speed
	case IntentDown:
		p.DY = speed
	case IntentTarget:
		p.DY = 0
		p.Y = in.TargetY - p.H/2
	default:
		p.DY = 0
	}
	p.Y += p.DY
	p.clamp()
}

func integrate(b *Ball) {
	b.X += b.DX
	b.Y += b.DY
}

// bounceWalls reports whether the ball crossed the top or bottom edge. The
// ball is put back on the edge and dy is pointed back into the board.
func bounceWalls(b *Ball) bool {
	switch {
	case b.Y < 0:
		b.Y = 0
		b.DY = math.Abs(b.DY)
		return true
	case b.Y+b.Size > BoardHeight:
		b.Y = BoardHeight - b.Size
		b.DY = -math.Abs(b.DY)
		return true
	}
	return false
}

func overlaps(b Ball, p Paddle) bool {
	return b.X < p.X+p.W &&
		b.X+b.Size > p.X &&
		b.Y < p.Y+p.H &&
		b.Y+b.Size > p.Y
}

// deflect points dx away from the paddle's side and adds spin. It is a
// directional clamp, not a reflection: an outgoing ball keeps its direction.
func deflect(b *Ball, p Paddle, side Side) {
	if side == SideLeft {
		b.DX = math.Abs(b.DX)
	} else {
		b.DX = -math.Abs(b.DX)
	}
	spin(b, p)
}

// spin deflects dy by where the ball struck the paddle. Unclamped, so
// repeated off-center hits compound.
func spin(b *Ball, p Paddle) {
	b.DY += (b.CenterY() - p.CenterY()) * spinFactor
}

func exitedEdge(b Ball) (Side, bool) {
	if b.X < 0 {
		return SideLeft, true
	}
	if b.X+b.Size > BoardWidth {
		return SideRight, true
	}
	return "", false
}

func speedOf(b Ball) float64 {
	return math.Hypot(b.DX, b.DY)
}
