package game

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDeflect_PointsAwayFromPaddleSide(t *testing.T) {
	t.Parallel()

	p := newPaddle(SideLeft)
	for _, dx := range []float64{-4, 4} {
		b := Ball{Size: BallSize, DX: dx}
		b.Y = p.CenterY() - BallSize/2
		deflect(&b, p, SideLeft)
		if b.DX != 4 {
			t.Fatalf("left paddle with incoming dx=%v: got dx=%v, want 4", dx, b.DX)
		}
		deflect(&b, newPaddle(SideRight), SideRight)
		if b.DX != -4 {
			t.Fatalf("right paddle: got dx=%v, want -4", b.DX)
		}
	}
}

func TestSpin_ProportionalToOffset(t *testing.T) {
	t.Parallel()

	p := newPaddle(SideLeft) // center y = 200
	b := Ball{Size: BallSize, DY: 2}
	b.Y = 230 - BallSize/2 // ball center 30 below paddle center
	spin(&b, p)
	if !approx(b.DY, 5) {
		t.Fatalf("dy mismatch: got %v, want 5", b.DY)
	}

	// No clamp: repeated off-center hits keep compounding.
	for i := 0; i < 10; i++ {
		spin(&b, p)
	}
	if !approx(b.DY, 35) {
		t.Fatalf("dy mismatch after repeated spin: got %v, want 35", b.DY)
	}
}

func TestBounceWalls(t *testing.T) {
	t.Parallel()

	b := Ball{Y: -3, Size: BallSize, DY: -5}
	if !bounceWalls(&b) {
		t.Fatalf("expected top bounce")
	}
	if b.Y != 0 || b.DY != 5 {
		t.Fatalf("top bounce: got y=%v dy=%v", b.Y, b.DY)
	}

	b = Ball{Y: BoardHeight - 5, Size: BallSize, DY: 5}
	if !bounceWalls(&b) {
		t.Fatalf("expected bottom bounce")
	}
	if b.Y != BoardHeight-BallSize || b.DY != -5 {
		t.Fatalf("bottom bounce: got y=%v dy=%v", b.Y, b.DY)
	}

	b = Ball{Y: 100, Size: BallSize, DY: 5}
	if bounceWalls(&b) {
		t.Fatalf("unexpected bounce in the middle of the board")
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	p := newPaddle(SideRight) // x 790..800, y 160..240
	if !overlaps(Ball{X: 785, Y: 200, Size: BallSize}, p) {
		t.Fatalf("expected overlap")
	}
	if overlaps(Ball{X: 780, Y: 200, Size: BallSize}, p) {
		t.Fatalf("touching edges must not overlap")
	}
	if overlaps(Ball{X: 785, Y: 300, Size: BallSize}, p) {
		t.Fatalf("ball below paddle must not overlap")
	}
}

func TestMovePaddle_ClampsToBoard(t *testing.T) {
	t.Parallel()

	p := newPaddle(SideLeft)
	for i := 0; i < 100; i++ {
		movePaddle(&p, Up(), 7)
	}
	if p.Y != 0 {
		t.Fatalf("expected paddle at top, got %v", p.Y)
	}

	movePaddle(&p, Target(10_000), 7)
	if p.Y != BoardHeight-PaddleHeight {
		t.Fatalf("expected paddle clamped at bottom, got %v", p.Y)
	}

	movePaddle(&p, Target(100), 7)
	if p.CenterY() != 100 {
		t.Fatalf("expected paddle centered at 100, got %v", p.CenterY())
	}
}

func TestTracker_EasyMovesLessThanHard(t *testing.T) {
	t.Parallel()

	ball := Ball{X: 400, Y: 95, Size: BallSize} // center 100, above the paddle
	move := func(d Difficulty) float64 {
		cfg := DefaultConfig()
		cfg.Difficulty = d
		p := newPaddle(SideRight)
		trackerFor(cfg, tiers[d].paddleSpeed).Move(&p, ball)
		return math.Abs(p.Y - p.PrevY)
	}

	easy := move(DifficultyEasy)
	hard := move(DifficultyHard)
	if easy != 2 {
		t.Fatalf("easy move mismatch: got %v, want 2", easy)
	}
	if hard != 9 {
		t.Fatalf("hard move mismatch: got %v, want 9", hard)
	}
	if easy >= hard {
		t.Fatalf("expected easy (%v) to move less than hard (%v)", easy, hard)
	}
}

func TestTracker_DeadbandAndTarget(t *testing.T) {
	t.Parallel()

	p := newPaddle(SideRight) // y = 160, target when ball center = 200
	onTarget := Ball{Y: 200 - BallSize/2, Size: BallSize}

	survival := Tracker{Speed: 9, Blend: 0.9}
	survival.Move(&p, onTarget)
	if p.Y != 160 || p.DY != 0 {
		t.Fatalf("expected no movement on target, got y=%v dy=%v", p.Y, p.DY)
	}

	easy := Tracker{Speed: 2, Blend: 0.3, Deadband: 10}
	nearby := Ball{Y: 208 - BallSize/2, Size: BallSize} // gap 8
	easy.Move(&p, nearby)
	if p.Y != 160 {
		t.Fatalf("expected deadband to suppress movement, got y=%v", p.Y)
	}

	medium := Tracker{Speed: 5, Blend: 0.5, Deadband: 5}
	medium.Move(&p, nearby)
	if p.Y != 164 {
		t.Fatalf("expected blended move to 164, got y=%v", p.Y)
	}
}

func TestTrackerFor(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Mode = ModeSurvival
	tr := trackerFor(cfg, 7)
	if tr.Speed != 9 || tr.Blend != 0.9 || tr.Deadband != 0 {
		t.Fatalf("survival tracker mismatch: %+v", tr)
	}

	cfg.Mode = ModeStandard
	cfg.Difficulty = DifficultyMedium
	tr = trackerFor(cfg, 7)
	if tr.Speed != 5 || tr.Blend != 0.5 || tr.Deadband != 5 {
		t.Fatalf("medium tracker mismatch: %+v", tr)
	}
}
