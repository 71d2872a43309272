package core

const (
	CourtWidth   = 400.0
	CourtHeight  = 400.0
	GroundHeight = 50.0
	FloorY       = CourtHeight - GroundHeight // top edge of the ground band

	PaddleInset      = 20.0 // distance of a paddle centre from its side of the court
	PaddleWidth      = 20.0
	PaddleHeight     = 40.0
	PaddleHalfWidth  = PaddleWidth / 2
	PaddleHalfHeight = PaddleHeight / 2
	PaddleMinY       = PaddleHalfHeight
	PaddleMaxY       = FloorY - PaddleHalfHeight

	JumpVelocity   = -6.0 // set, not added, while the jump key is held
	PaddleGravity  = 0.4
	AnimThreshold  = 1.0 // |vy| above this switches idle to jump/fall
	BallSize       = 10.0
	BallHalfSize   = BallSize / 2
	BallMinY       = BallHalfSize
	BallMaxY       = FloorY - BallHalfSize
	BallGravity    = 0.1
	BallBounciness = 0.9 // share of vertical speed kept on a floor bounce
	BallSpeedUp    = 0.1 // horizontal speed gained on every paddle hit
	SpinEffect     = 0.2 // share of spin turned into horizontal speed on a floor bounce
	OffCourtY      = -BallSize

	ServeSpeedX     = 3.0
	ServeInset      = 50.0
	ServeHeight     = 100.0 // above the floor line
	ServeMinVelY    = -3.0
	ServeVelYSpread = 2.0

	CountdownSeconds = 3
	TicksPerCount    = 30
	TicksPerSecond   = 60

	DefaultTargetScore     = 7
	DefaultMinVictoryDelta = 2
)

// Rules are the match-winning conditions.
type Rules struct {
	TargetScore     int
	MinVictoryDelta int
}

func DefaultRules() Rules {
	return Rules{TargetScore: DefaultTargetScore, MinVictoryDelta: DefaultMinVictoryDelta}
}

// Wins reports whether score beats other under r.
func (r Rules) Wins(score, other int) bool {
	return score >= r.TargetScore && score-other >= r.MinVictoryDelta
}
