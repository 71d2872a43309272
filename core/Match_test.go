package core

import (
	"math"
	"math/rand"
	"testing"
)

type stubRandom struct {
	f float64
	n int
}

func (s stubRandom) Float64() float64 { return s.f }
func (s stubRandom) Intn(n int) int   { return s.n % n }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func newTestMatch() *Match {
	return NewMatch(DefaultRules(), stubRandom{f: 0.5, n: 0})
}

// playingMatch returns a match in play with the ball parked mid-court.
func playingMatch(t *testing.T) *Match {
	t.Helper()
	m := newTestMatch()
	m.Tick(Keys(ActionLeftReady, ActionRightReady))
	for i := 0; i < CountdownSeconds*TicksPerCount; i++ {
		m.Tick(Keys())
	}
	if m.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want Playing", m.Phase)
	}
	m.Ball.X, m.Ball.Y = CourtWidth/2, 200
	m.Ball.VelX, m.Ball.VelY, m.Ball.Spin = 0, 0, 0
	return m
}

func TestNewMatchWaitsForReady(t *testing.T) {
	m := newTestMatch()
	if m.Phase != PhaseAwaitingReady {
		t.Fatalf("phase = %v, want AwaitingReady", m.Phase)
	}
	for _, p := range []*Paddle{&m.LeftPaddle, &m.RightPaddle} {
		if p.Y != CourtHeight/2 || p.VelY != 0 {
			t.Fatalf("%v paddle at y=%f vy=%f, want centre at rest", p.Side, p.Y, p.VelY)
		}
	}
	if m.LeftPaddle.X != 20 || m.RightPaddle.X != 380 {
		t.Fatalf("paddle x = %f/%f, want 20/380", m.LeftPaddle.X, m.RightPaddle.X)
	}
}

func TestReadyFlagsStartCountdown(t *testing.T) {
	m := newTestMatch()

	m.Tick(Keys(ActionLeftReady))
	if !m.LeftReady || m.RightReady || m.Phase != PhaseAwaitingReady {
		t.Fatalf("after left ready: left=%v right=%v phase=%v", m.LeftReady, m.RightReady, m.Phase)
	}

	// Releasing the key never clears the flag.
	m.Tick(Keys())
	if !m.LeftReady {
		t.Fatalf("left ready flag was cleared")
	}

	m.Tick(Keys(ActionRightReady))
	if m.Phase != PhaseCountdown {
		t.Fatalf("phase = %v, want Countdown", m.Phase)
	}
	if m.SecondsRemaining != 3 || m.TicksRemaining != 30 {
		t.Fatalf("countdown = %d/%d, want 3/30", m.SecondsRemaining, m.TicksRemaining)
	}
}

func TestAwaitingReadyRunsNoPhysics(t *testing.T) {
	m := newTestMatch()
	for i := 0; i < 10; i++ {
		m.Tick(Keys())
	}
	if m.LeftPaddle.Y != CourtHeight/2 || m.RightPaddle.VelY != 0 {
		t.Fatalf("paddles moved while waiting: %f %f", m.LeftPaddle.Y, m.RightPaddle.VelY)
	}
}

func TestCountdownTakesNinetyTicks(t *testing.T) {
	inputs := []KeySet{Keys(), Keys(ActionLeftJump), Keys(ActionLeftJump, ActionRightJump), Keys(ActionRestart)}
	for _, in := range inputs {
		m := newTestMatch()
		m.Tick(Keys(ActionLeftReady, ActionRightReady))
		ticks := 0
		for m.Phase == PhaseCountdown {
			m.Tick(in)
			ticks++
			if ticks > 1000 {
				t.Fatalf("countdown never ended")
			}
		}
		if ticks != 90 {
			t.Fatalf("countdown took %d ticks with %v, want 90", ticks, in)
		}
		if m.Phase != PhasePlaying {
			t.Fatalf("phase = %v, want Playing", m.Phase)
		}
	}
}

func TestCountdownSecondsDecrease(t *testing.T) {
	m := newTestMatch()
	m.Tick(Keys(ActionLeftReady, ActionRightReady))
	for i := 0; i < 30; i++ {
		m.Tick(Keys())
	}
	if m.SecondsRemaining != 2 || m.TicksRemaining != 30 {
		t.Fatalf("after 30 ticks countdown = %d/%d, want 2/30", m.SecondsRemaining, m.TicksRemaining)
	}
}

func TestPaddlesMoveDuringCountdownAndFinished(t *testing.T) {
	m := newTestMatch()
	m.Tick(Keys(ActionLeftReady, ActionRightReady))
	y := m.LeftPaddle.Y
	m.Tick(Keys(ActionLeftJump))
	if m.Phase != PhaseCountdown {
		t.Fatalf("phase = %v, want Countdown", m.Phase)
	}
	if m.LeftPaddle.VelY != JumpVelocity || m.LeftPaddle.Y >= y {
		t.Fatalf("countdown jump: y=%f vy=%f, want below %f at vy %f", m.LeftPaddle.Y, m.LeftPaddle.VelY, y, JumpVelocity)
	}

	m = playingMatch(t)
	m.LeftScore, m.RightScore = 7, 2
	m.Tick(Keys())
	if m.Phase != PhaseFinished {
		t.Fatalf("phase = %v, want Finished", m.Phase)
	}
	y = m.LeftPaddle.Y
	m.Tick(Keys(ActionLeftJump))
	if m.LeftPaddle.VelY != JumpVelocity || m.LeftPaddle.Y >= y {
		t.Fatalf("finished jump: y=%f vy=%f, want below %f at vy %f", m.LeftPaddle.Y, m.LeftPaddle.VelY, y, JumpVelocity)
	}
	if m.RightPaddle.Y != PaddleMaxY {
		t.Fatalf("right paddle y = %f, want resting at %v", m.RightPaddle.Y, float64(PaddleMaxY))
	}
}

func TestPlayingServesByRandomDirection(t *testing.T) {
	tests := []struct {
		n     int
		wantX float64
		wantV float64
	}{
		{n: 0, wantX: 50, wantV: 3},
		{n: 1, wantX: 350, wantV: -3},
	}
	for _, tt := range tests {
		m := NewMatch(DefaultRules(), stubRandom{f: 0, n: tt.n})
		m.Tick(Keys(ActionLeftReady, ActionRightReady))
		for m.Phase == PhaseCountdown {
			m.Tick(Keys())
		}
		if m.Ball.X != tt.wantX || m.Ball.VelX != tt.wantV {
			t.Fatalf("serve n=%d: x=%f vx=%f, want x=%f vx=%f", tt.n, m.Ball.X, m.Ball.VelX, tt.wantX, tt.wantV)
		}
	}
}

func TestScoringServesTowardsScorer(t *testing.T) {
	m := playingMatch(t)
	m.Ball.X, m.Ball.VelX = -4, -3

	m.Tick(Keys())
	if m.RightScore != 1 || m.LeftScore != 0 {
		t.Fatalf("score = %d-%d, want 0-1", m.LeftScore, m.RightScore)
	}
	if m.Ball.X != 50 || m.Ball.VelX != 3 || m.Ball.Spin != 0 {
		t.Fatalf("serve: x=%f vx=%f spin=%f, want 50, 3, 0", m.Ball.X, m.Ball.VelX, m.Ball.Spin)
	}
	if m.Ball.Y != 250 {
		t.Fatalf("serve y = %f, want 250", m.Ball.Y)
	}

	m.Ball.X, m.Ball.Y, m.Ball.VelX = 404, 200, 3
	m.Tick(Keys())
	if m.LeftScore != 1 || m.RightScore != 1 {
		t.Fatalf("score = %d-%d, want 1-1", m.LeftScore, m.RightScore)
	}
	if m.Ball.X != 350 || m.Ball.VelX != -3 {
		t.Fatalf("serve: x=%f vx=%f, want 350, -3", m.Ball.X, m.Ball.VelX)
	}
}

func TestBallStillInPlayDoesNotScore(t *testing.T) {
	m := playingMatch(t)
	// Right edge is still past zero after the move.
	m.Ball.X, m.Ball.VelX = 3, -3
	m.Tick(Keys())
	if m.RightScore != 0 {
		t.Fatalf("scored with ball edge on the court")
	}
}

func TestMatchEnd(t *testing.T) {
	tests := []struct {
		left, right int
		finished    bool
		winner      Side
	}{
		{7, 5, true, SideLeft},
		{7, 6, false, SideNone},
		{8, 6, true, SideLeft},
		{6, 6, false, SideNone},
		{5, 7, true, SideRight},
		{10, 11, false, SideNone},
		{10, 12, true, SideRight},
	}
	for _, tt := range tests {
		m := playingMatch(t)
		m.LeftScore, m.RightScore = tt.left, tt.right
		m.Tick(Keys())
		if got := m.Phase == PhaseFinished; got != tt.finished {
			t.Fatalf("%d-%d finished = %v, want %v", tt.left, tt.right, got, tt.finished)
		}
		if m.Winner != tt.winner {
			t.Fatalf("%d-%d winner = %v, want %v", tt.left, tt.right, m.Winner, tt.winner)
		}
		if tt.finished && m.Ball.Y != OffCourtY {
			t.Fatalf("ball y = %f after finish, want %f", m.Ball.Y, OffCourtY)
		}
	}
}

func TestRestartFromFinished(t *testing.T) {
	m := playingMatch(t)
	m.LeftScore, m.RightScore = 7, 2
	m.Tick(Keys())
	if m.Phase != PhaseFinished {
		t.Fatalf("phase = %v, want Finished", m.Phase)
	}

	m.Tick(Keys(ActionLeftJump))
	if m.Phase != PhaseFinished {
		t.Fatalf("left without restart")
	}

	m.Tick(Keys(ActionRestart))
	if m.Phase != PhaseAwaitingReady {
		t.Fatalf("phase = %v, want AwaitingReady", m.Phase)
	}
	if m.LeftScore != 0 || m.RightScore != 0 || m.LeftReady || m.RightReady {
		t.Fatalf("restart kept state: %d-%d ready %v/%v", m.LeftScore, m.RightScore, m.LeftReady, m.RightReady)
	}
	if m.Winner != SideNone {
		t.Fatalf("winner = %v after restart", m.Winner)
	}
}

func TestMatchPoint(t *testing.T) {
	m := newTestMatch()
	m.LeftScore, m.RightScore = 6, 5
	if !m.MatchPoint() {
		t.Fatalf("6-5 should be match point")
	}
	m.LeftScore, m.RightScore = 6, 6
	if m.MatchPoint() {
		t.Fatalf("6-6 should not be match point")
	}
	m.LeftScore, m.RightScore = 7, 8
	if !m.MatchPoint() {
		t.Fatalf("7-8 should be match point")
	}
}

func TestWrongPhaseUpdatePanics(t *testing.T) {
	calls := map[string]func(m *Match){
		"countdown": func(m *Match) { m.tickCountdown(Keys()) },
		"playing":   func(m *Match) { m.tickPlaying(Keys()) },
		"finished":  func(m *Match) { m.tickFinished(Keys()) },
	}
	for name, call := range calls {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s update in AwaitingReady did not panic", name)
				}
			}()
			call(newTestMatch())
		}()
	}
}

func TestUnknownPhasePanics(t *testing.T) {
	m := newTestMatch()
	m.Phase = Phase(42)
	defer func() {
		if recover() == nil {
			t.Fatalf("tick in unknown phase did not panic")
		}
	}()
	m.Tick(Keys())
}

func TestPaddlesStayOnCourt(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	m := NewMatch(DefaultRules(), r)
	m.Tick(Keys(ActionLeftReady, ActionRightReady))
	for i := 0; i < 5000; i++ {
		var held []Action
		if r.Intn(3) == 0 {
			held = append(held, ActionLeftJump)
		}
		if r.Intn(2) == 0 {
			held = append(held, ActionRightJump)
		}
		m.Tick(Keys(held...))
		for _, p := range []*Paddle{&m.LeftPaddle, &m.RightPaddle} {
			if p.Y < 20 || p.Y > 330 {
				t.Fatalf("tick %d: %v paddle y = %f", i, p.Side, p.Y)
			}
		}
		if m.Phase == PhasePlaying && (m.Ball.Y < BallMinY || m.Ball.Y > BallMaxY) {
			t.Fatalf("tick %d: ball y = %f", i, m.Ball.Y)
		}
		if m.Phase == PhaseFinished {
			m.Tick(Keys(ActionRestart))
			m.Tick(Keys(ActionLeftReady, ActionRightReady))
		}
	}
}
