package room

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"TennisJump/core"
	"TennisJump/hud"
	"TennisJump/logger"
)

// Room runs one sequence of matches on one court. It is not safe for
// concurrent use; the frontend that owns it ticks it from a single goroutine.
type Room struct {
	RoomId     string
	MatchId    string
	Name       string
	GameStatus string
	CreateDate string
	Ticks      int

	Match   *core.Match
	Overlay *hud.Overlay
}

// Keys are the labels shown for each player's key.
type Keys struct {
	Left, Right, Restart string
}

func NewRoom(name string, rules core.Rules, rng core.Random, keys Keys) *Room {
	r := &Room{
		RoomId:     uuid.NewString(),
		Name:       name,
		CreateDate: time.Now().Format("2006-01-02 15:04"),
		Match:      core.NewMatch(rules, rng),
		Overlay:    hud.NewOverlay(keys.Left, keys.Right, keys.Restart),
	}
	r.GameStatus = r.Match.Phase.String()
	r.Overlay.Update(r.Match)
	logger.Log.WithFields(r.fields()).Info(fmt.Sprintf(logger.MatchWaitingMsg, r.RoomId))
	return r
}

// Tick advances the match one step and refreshes the HUD.
func (r *Room) Tick(in core.Controls) {
	m := r.Match
	phase := m.Phase
	leftReady, rightReady := m.LeftReady, m.RightReady
	left, right := m.LeftScore, m.RightScore

	m.Tick(in)
	r.Ticks++
	r.Overlay.Update(m)
	r.GameStatus = m.Phase.String()

	if phase == core.PhaseAwaitingReady {
		if m.LeftReady && !leftReady {
			r.logReady(core.SideLeft)
		}
		if m.RightReady && !rightReady {
			r.logReady(core.SideRight)
		}
	}
	if m.LeftScore > left {
		r.logPoint(core.SideLeft)
	}
	if m.RightScore > right {
		r.logPoint(core.SideRight)
	}
	if m.Phase != phase {
		r.enter(m.Phase)
	}
}

func (r *Room) enter(p core.Phase) {
	switch p {
	case core.PhaseCountdown:
		r.MatchId = uuid.NewString()
		logger.Log.WithFields(r.fields()).Info(fmt.Sprintf(logger.MatchCountdownMsg, r.MatchId))
	case core.PhasePlaying:
		logger.Log.WithFields(r.fields()).Info(fmt.Sprintf(logger.MatchStartedMsg, r.MatchId))
	case core.PhaseFinished:
		logger.Log.WithFields(r.fields()).Info(fmt.Sprintf(logger.MatchFinishedMsg, r.MatchId, r.Match.Winner))
	case core.PhaseAwaitingReady:
		logger.Log.WithFields(r.fields()).Info(fmt.Sprintf(logger.MatchRestartMsg, r.RoomId))
	}
}

func (r *Room) logReady(s core.Side) {
	logger.Log.WithFields(r.fields()).Debug(fmt.Sprintf(logger.PlayerReadyMsg, s, r.RoomId))
}

func (r *Room) logPoint(s core.Side) {
	logger.Log.WithFields(r.fields()).Info(fmt.Sprintf(logger.PointScoredMsg, s))
}

func (r *Room) fields() logrus.Fields {
	return logrus.Fields{
		"room":  r.RoomId,
		"match": r.MatchId,
		"phase": r.GameStatus,
		"tick":  r.Ticks,
		"left":  r.Match.LeftScore,
		"right": r.Match.RightScore,
	}
}
