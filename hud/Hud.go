// Package hud turns match state into the text a frontend draws over the court.
// Nothing here changes gameplay.
package hud

import (
	"strconv"

	"TennisJump/core"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Tint int

const (
	TintBlack Tint = iota
	TintWhite
	TintRed
	TintBlue
)

// Text is one line of HUD text. X and Y are court coordinates of the anchor;
// Y is the vertical middle of the line and Align decides which end of the
// line X refers to.
type Text struct {
	Str   string
	X, Y  float64
	Align Align
	Size  float64
	Tint  Tint
}

const (
	countdownFontSize = 100
	oscillatorRange   = 20
	winnerBaseSize    = 40
)

// Overlay keeps the cosmetic effects that span several ticks.
type Overlay struct {
	LeftKey    string
	RightKey   string
	RestartKey string

	phase              core.Phase
	displayedCountdown int
	fontSize           int
	oscillator         int
	texts              []Text
}

func NewOverlay(leftKey, rightKey, restartKey string) *Overlay {
	return &Overlay{
		LeftKey:    leftKey,
		RightKey:   rightKey,
		RestartKey: restartKey,
		fontSize:   40,
		oscillator: oscillatorRange,
	}
}

// FontSize is the current size of the countdown digit.
func (o *Overlay) FontSize() int { return o.fontSize }

// Texts returns the lines computed by the last Update.
func (o *Overlay) Texts() []Text { return o.texts }

// Update advances the effects by one tick and rebuilds the lines for m.
func (o *Overlay) Update(m *core.Match) []Text {
	o.texts = o.texts[:0]
	entered := m.Phase != o.phase
	o.phase = m.Phase
	switch m.Phase {
	case core.PhaseAwaitingReady:
		o.displayedCountdown = 0
		o.readyTexts(m)
		o.actionTexts("READY")
	case core.PhaseCountdown:
		// The tick that starts the countdown still shows the ready screen.
		if entered {
			o.readyTexts(m)
			o.actionTexts("READY")
			break
		}
		o.countdownTexts(m)
		o.scoreTexts(m)
		o.actionTexts("JUMP")
	case core.PhasePlaying:
		o.displayedCountdown = 0
		o.scoreTexts(m)
		o.actionTexts("JUMP")
		if m.MatchPoint() {
			o.topCenter("MATCH POINT")
		}
	case core.PhaseFinished:
		o.finishedTexts(m)
		o.scoreTexts(m)
		o.topCenter("FINAL SCORE")
	}
	return o.texts
}

func (o *Overlay) add(t Text) { o.texts = append(o.texts, t) }

func (o *Overlay) readyTexts(m *core.Match) {
	o.add(Text{Str: "TENNIS JUMP", X: core.CourtWidth / 2, Y: 30, Align: AlignCenter, Size: 20})
	o.add(Text{Str: "Play to " + strconv.Itoa(m.Rules.TargetScore), X: core.CourtWidth / 2, Y: 62, Align: AlignCenter, Size: 16})
	if m.Rules.MinVictoryDelta > 1 {
		o.add(Text{Str: "Must win by " + strconv.Itoa(m.Rules.MinVictoryDelta), X: core.CourtWidth / 2, Y: 88, Align: AlignCenter, Size: 16})
	}
	o.add(readyText(m.LeftReady, 10, AlignLeft, TintRed))
	o.add(readyText(m.RightReady, core.CourtWidth-10, AlignRight, TintBlue))
}

func readyText(ready bool, x float64, align Align, tint Tint) Text {
	t := Text{Str: "Ready?", X: x, Y: core.CourtHeight/2 - 35, Align: align, Size: 18, Tint: TintBlack}
	if ready {
		t.Str, t.Size, t.Tint = "READY!", 24, tint
	}
	return t
}

func (o *Overlay) countdownTexts(m *core.Match) {
	if m.SecondsRemaining != o.displayedCountdown {
		o.displayedCountdown = m.SecondsRemaining
		o.fontSize = countdownFontSize
	} else {
		o.fontSize--
	}
	if o.fontSize > 0 {
		o.add(Text{
			Str:   strconv.Itoa(o.displayedCountdown),
			X:     core.CourtWidth / 2,
			Y:     core.CourtHeight / 2,
			Align: AlignCenter,
			Size:  float64(o.fontSize),
		})
	}
}

func (o *Overlay) finishedTexts(m *core.Match) {
	o.oscillator--
	if o.oscillator <= -oscillatorRange {
		o.oscillator = oscillatorRange
	}
	osc := o.oscillator
	if osc < 0 {
		osc = -osc
	}

	winner, tint := "BLUE WINS", TintBlue
	if m.Winner == core.SideLeft {
		winner, tint = "RED WINS", TintRed
	}
	o.add(Text{Str: winner, X: core.CourtWidth / 2, Y: core.FloorY / 2, Align: AlignCenter, Size: float64(winnerBaseSize + osc), Tint: tint})
	o.add(Text{Str: `Press "` + o.RestartKey + `" to restart`, X: core.CourtWidth / 2, Y: core.CourtHeight/2 + 8, Align: AlignCenter, Size: 16})
}

func (o *Overlay) scoreTexts(m *core.Match) {
	o.add(Text{Str: strconv.Itoa(m.Score(core.SideLeft)), X: 10, Y: 20, Align: AlignLeft, Size: 20, Tint: TintRed})
	o.add(Text{Str: strconv.Itoa(m.Score(core.SideRight)), X: core.CourtWidth - 10, Y: 20, Align: AlignRight, Size: 20, Tint: TintBlue})
}

func (o *Overlay) topCenter(s string) {
	o.add(Text{Str: s, X: core.CourtWidth / 2, Y: 20, Align: AlignCenter, Size: 20})
}

func (o *Overlay) actionTexts(action string) {
	y := core.CourtHeight - 20.0
	o.add(Text{Str: o.LeftKey + " : " + action, X: 10, Y: y, Align: AlignLeft, Size: 18, Tint: TintWhite})
	o.add(Text{Str: action + " : " + o.RightKey, X: core.CourtWidth - 10, Y: y, Align: AlignRight, Size: 18, Tint: TintWhite})
}
