package core

func updatePaddle(p *Paddle, jumpHeld bool) {
	if jumpHeld {
		p.VelY = JumpVelocity
	} else {
		p.VelY += PaddleGravity
	}
	p.Y += p.VelY

	if p.Y > PaddleMaxY {
		p.Y = PaddleMaxY
		p.VelY = 0
	} else if p.Y < PaddleMinY {
		p.Y = PaddleMinY
		p.VelY = 0
	}

	switch {
	case p.VelY < -AnimThreshold:
		p.Animation = AnimJump
	case p.VelY > AnimThreshold:
		p.Animation = AnimFall
	default:
		p.Animation = AnimIdle
	}
}

func (m *Match) updateBall() {
	b := &m.Ball
	b.VelY += BallGravity
	b.X += b.VelX
	b.Y += b.VelY

	bounceOffCourt(b)

	if hitsFromRight(b, &m.LeftPaddle) {
		b.X = m.LeftPaddle.X + PaddleHalfWidth
		returnBall(b, &m.LeftPaddle, -m.LeftPaddle.VelY)
	} else if hitsFromLeft(b, &m.RightPaddle) {
		b.X = m.RightPaddle.X - PaddleHalfWidth
		returnBall(b, &m.RightPaddle, m.RightPaddle.VelY)
	}

	if b.Right() < 0 {
		m.RightScore++
		m.serve(1)
	} else if b.Left() > CourtWidth {
		m.LeftScore++
		m.serve(-1)
	}
}

// bounceOffCourt keeps the ball between the ceiling and the floor line.
// Floor bounces lose energy and turn part of the spin into horizontal speed.
func bounceOffCourt(b *Ball) {
	if b.Bottom() > FloorY {
		b.Y = BallMaxY
		b.VelY *= -BallBounciness

		spinEffect := b.Spin * SpinEffect
		b.VelX += spinEffect
		b.Spin -= spinEffect
	} else if b.Top() < 0 {
		b.Y = BallMinY
		b.VelY = -b.VelY
	}
}

// hitsFromRight reports whether the ball centre is inside the right half of p
// and the boxes overlap vertically.
func hitsFromRight(b *Ball, p *Paddle) bool {
	return b.X > p.X && b.X < p.X+PaddleHalfWidth && overlapsVertically(b, p)
}

func hitsFromLeft(b *Ball, p *Paddle) bool {
	return b.X < p.X && b.X > p.X-PaddleHalfWidth && overlapsVertically(b, p)
}

func overlapsVertically(b *Ball, p *Paddle) bool {
	return b.Bottom() > p.Top() && b.Top() < p.Bottom()
}

// returnBall sends the ball back faster. The ball takes the paddle's vertical
// velocity as is.
func returnBall(b *Ball, p *Paddle, spin float64) {
	b.VelX *= -(1 + BallSpeedUp)
	b.VelY = p.VelY
	b.Spin += spin
}
