// Package window plays a room in a desktop window with ebiten.
package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"TennisJump/config"
	"TennisJump/core"
	"TennisJump/hud"
	"TennisJump/logger"
	"TennisJump/room"
)

// Debug font cell, see ebitenutil.DebugPrintAt.
const (
	charWidth  = 6
	charHeight = 16
)

var (
	courtColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	groundColor = color.RGBA{0x00, 0xaa, 0x00, 0xff}
	ballColor   = color.RGBA{0xe0, 0xc0, 0x20, 0xff}

	tintColors = map[hud.Tint]color.Color{
		hud.TintBlack: color.RGBA{0x20, 0x20, 0x20, 0xff},
		hud.TintRed:   color.RGBA{0xd0, 0x20, 0x20, 0xff},
		hud.TintBlue:  color.RGBA{0x20, 0x40, 0xd0, 0xff},
	}

	// Paddle colours per side for idle, jump and fall.
	paddleColors = map[core.Side][3]color.Color{
		core.SideLeft: {
			color.RGBA{0xd0, 0x20, 0x20, 0xff},
			color.RGBA{0xff, 0x60, 0x60, 0xff},
			color.RGBA{0x90, 0x10, 0x10, 0xff},
		},
		core.SideRight: {
			color.RGBA{0x20, 0x40, 0xd0, 0xff},
			color.RGBA{0x60, 0x80, 0xff, 0xff},
			color.RGBA{0x10, 0x20, 0x90, 0xff},
		},
	}
)

// Game implements ebiten.Game for one room.
type Game struct {
	room     *room.Room
	keys     keyboard
	quit     ebiten.Key
	rotation float64
	ball     *ebiten.Image
}

func NewGame(s config.Settings, r *room.Room) (*Game, error) {
	keys, err := newKeyboard(s.LeftKey, s.RightKey, s.RestartKey)
	if err != nil {
		return nil, err
	}
	quit, err := lookupKey(s.QuitKey)
	if err != nil {
		return nil, err
	}
	return &Game{room: r, keys: keys, quit: quit}, nil
}

// Update runs one match tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(g.quit) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.room.Tick(g.keys)
	g.rotation += g.room.Match.Ball.Spin * math.Pi / 180
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	m := g.room.Match
	screen.Fill(courtColor)
	vector.FillRect(screen, 0, core.FloorY, core.CourtWidth, core.GroundHeight, groundColor, false)

	drawPaddle(screen, &m.LeftPaddle)
	drawPaddle(screen, &m.RightPaddle)

	if m.Phase == core.PhasePlaying {
		g.drawBall(screen, &m.Ball)
	}

	for _, t := range g.room.Overlay.Texts() {
		drawText(screen, t)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(core.CourtWidth), int(core.CourtHeight)
}

func drawPaddle(screen *ebiten.Image, p *core.Paddle) {
	clr := paddleColors[p.Side][p.Animation]
	vector.FillRect(screen, float32(p.Left()), float32(p.Top()), float32(p.Width), float32(p.Height), clr, false)
}

func (g *Game) drawBall(screen *ebiten.Image, b *core.Ball) {
	if g.ball == nil {
		g.ball = ebiten.NewImage(int(core.BallSize), int(core.BallSize))
		g.ball.Fill(ballColor)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-core.BallHalfSize, -core.BallHalfSize)
	op.GeoM.Rotate(g.rotation)
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(g.ball, op)
}

// drawText prints t with the debug font. The font is fixed-size white, so
// coloured text gets a box in its tint behind it and larger sizes get a
// larger box.
func drawText(screen *ebiten.Image, t hud.Text) {
	if t.Size <= 0 {
		return
	}
	w := float64(len(t.Str) * charWidth)
	x := t.X
	switch t.Align {
	case hud.AlignCenter:
		x -= w / 2
	case hud.AlignRight:
		x -= w
	}
	y := t.Y - charHeight/2

	if clr, ok := tintColors[t.Tint]; ok {
		pad := math.Max(2, t.Size/8)
		vector.FillRect(screen, float32(x-pad), float32(y-pad/2), float32(w+2*pad), float32(charHeight+pad), clr, false)
	}
	ebitenutil.DebugPrintAt(screen, t.Str, int(x), int(y))
}

// Run opens the window and blocks until it is closed or the quit key is hit.
func Run(s config.Settings, r *room.Room) error {
	g, err := NewGame(s, r)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(int(core.CourtWidth*s.Scale), int(core.CourtHeight*s.Scale))
	ebiten.SetWindowTitle("Tennis Jump")
	ebiten.SetTPS(s.TickRate)

	logger.Log.Info(fmt.Sprintf(logger.FrontendStartMsg, config.FrontendWindow))
	defer logger.Log.Info(fmt.Sprintf(logger.FrontendStopMsg, config.FrontendWindow))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
