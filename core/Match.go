package core

import "fmt"

// Phase is the stage a match is in. Exactly one is active.
type Phase int

const (
	PhaseAwaitingReady Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingReady:
		return "AwaitingReady"
	case PhaseCountdown:
		return "Countdown"
	case PhasePlaying:
		return "Playing"
	case PhaseFinished:
		return "Finished"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Match is the whole simulated game. Renderers read its fields after each Tick
// and must not write them.
type Match struct {
	Phase Phase
	Rules Rules

	LeftPaddle  Paddle
	RightPaddle Paddle
	Ball        Ball

	LeftScore  int
	RightScore int

	// AwaitingReady only.
	LeftReady  bool
	RightReady bool

	// Countdown only.
	SecondsRemaining int
	TicksRemaining   int

	// Finished only.
	Winner Side

	rng Random
}

// NewMatch returns a match waiting for both players to get ready.
func NewMatch(rules Rules, rng Random) *Match {
	if rng == nil {
		panic("core: NewMatch needs a random source")
	}
	m := &Match{
		Rules:       rules,
		LeftPaddle:  newPaddle(SideLeft),
		RightPaddle: newPaddle(SideRight),
		Ball:        newBall(),
		rng:         rng,
	}
	m.waitForReady()
	return m
}

// Tick advances the match by one fixed step.
func (m *Match) Tick(in Controls) {
	switch m.Phase {
	case PhaseAwaitingReady:
		m.tickAwaitingReady(in)
	case PhaseCountdown:
		m.tickCountdown(in)
	case PhasePlaying:
		m.tickPlaying(in)
	case PhaseFinished:
		m.tickFinished(in)
	default:
		panic(fmt.Sprintf("core: tick in unknown phase %v", m.Phase))
	}
}

// Score returns the score of side s.
func (m *Match) Score(s Side) int {
	switch s {
	case SideLeft:
		return m.LeftScore
	case SideRight:
		return m.RightScore
	}
	return 0
}

// Paddle returns the paddle of side s.
func (m *Match) Paddle(s Side) *Paddle {
	if s == SideRight {
		return &m.RightPaddle
	}
	return &m.LeftPaddle
}

// MatchPoint reports whether one more point for either side would end the match.
func (m *Match) MatchPoint() bool {
	return m.Rules.Wins(m.LeftScore+1, m.RightScore) || m.Rules.Wins(m.RightScore+1, m.LeftScore)
}

func (m *Match) mustBe(p Phase) {
	if m.Phase != p {
		panic(fmt.Sprintf("core: %v update called during %v", p, m.Phase))
	}
}

func (m *Match) waitForReady() {
	m.LeftScore, m.RightScore = 0, 0
	m.LeftReady, m.RightReady = false, false
	m.Winner = SideNone
	for _, p := range []*Paddle{&m.LeftPaddle, &m.RightPaddle} {
		p.Y = CourtHeight / 2
		p.VelY = 0
		p.Animation = AnimIdle
	}
	m.Phase = PhaseAwaitingReady
}

func (m *Match) tickAwaitingReady(in Controls) {
	m.mustBe(PhaseAwaitingReady)
	if in.Held(ActionLeftReady) {
		m.LeftReady = true
	}
	if in.Held(ActionRightReady) {
		m.RightReady = true
	}
	if m.LeftReady && m.RightReady {
		m.startCountdown()
	}
}

func (m *Match) startCountdown() {
	m.SecondsRemaining = CountdownSeconds
	m.TicksRemaining = TicksPerCount
	m.Phase = PhaseCountdown
}

func (m *Match) tickCountdown(in Controls) {
	m.mustBe(PhaseCountdown)
	m.TicksRemaining--
	if m.TicksRemaining <= 0 {
		m.TicksRemaining = TicksPerCount
		m.SecondsRemaining--
		if m.SecondsRemaining <= 0 {
			m.startPlaying()
		}
	}
	m.updatePaddles(in)
}

func (m *Match) startPlaying() {
	direction := 1
	if m.rng.Intn(2) == 1 {
		direction = -1
	}
	m.serve(direction)
	m.Phase = PhasePlaying
}

func (m *Match) tickPlaying(in Controls) {
	m.mustBe(PhasePlaying)
	m.updatePaddles(in)
	m.updateBall()
	if m.Rules.Wins(m.LeftScore, m.RightScore) || m.Rules.Wins(m.RightScore, m.LeftScore) {
		m.finish()
	}
}

func (m *Match) finish() {
	m.Ball.Y = OffCourtY
	m.Winner = SideRight
	if m.LeftScore > m.RightScore {
		m.Winner = SideLeft
	}
	m.Phase = PhaseFinished
}

func (m *Match) tickFinished(in Controls) {
	m.mustBe(PhaseFinished)
	m.updatePaddles(in)
	if in.Held(ActionRestart) {
		m.waitForReady()
	}
}

func (m *Match) updatePaddles(in Controls) {
	updatePaddle(&m.LeftPaddle, in.Held(jumpAction(SideLeft)))
	updatePaddle(&m.RightPaddle, in.Held(jumpAction(SideRight)))
}
