package core

// GameObject is a box on the court. X and Y are the centre of the box.
type GameObject struct {
	X, Y          float64
	VelX, VelY    float64
	Width, Height float64
}

func (o *GameObject) Top() float64    { return o.Y - o.Height/2 }
func (o *GameObject) Bottom() float64 { return o.Y + o.Height/2 }
func (o *GameObject) Left() float64   { return o.X - o.Width/2 }
func (o *GameObject) Right() float64  { return o.X + o.Width/2 }

type Ball struct {
	GameObject
	// Spin is the rotation speed. Renderers turn the sprite by this much every tick.
	Spin float64
}

type Paddle struct {
	GameObject
	Side      Side
	Animation Animation
}

// Side names one of the two players.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Animation is the sprite state a renderer should show for a paddle.
type Animation int

const (
	AnimIdle Animation = iota
	AnimJump
	AnimFall
)

func (a Animation) String() string {
	switch a {
	case AnimJump:
		return "jump"
	case AnimFall:
		return "fall"
	}
	return "idle"
}

func newPaddle(side Side) Paddle {
	x := float64(PaddleInset)
	if side == SideRight {
		x = CourtWidth - PaddleInset
	}
	return Paddle{
		GameObject: GameObject{X: x, Y: CourtHeight / 2, Width: PaddleWidth, Height: PaddleHeight},
		Side:       side,
	}
}

func newBall() Ball {
	return Ball{
		GameObject: GameObject{X: CourtWidth / 2, Y: CourtHeight / 2, Width: BallSize, Height: BallSize},
	}
}
