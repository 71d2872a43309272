package core

// serve puts the ball back in play. direction is +1 to serve towards the right
// player from the left side, -1 for the opposite.
func (m *Match) serve(direction int) {
	b := &m.Ball
	if direction == 1 {
		b.X = ServeInset
	} else {
		b.X = CourtWidth - ServeInset
	}
	b.Y = FloorY - ServeHeight
	b.VelX = ServeSpeedX * float64(direction)
	b.VelY = ServeMinVelY + ServeVelYSpread*m.rng.Float64()
	b.Spin = 0
}
