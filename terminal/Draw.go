package terminal

import (
	"github.com/gdamore/tcell"

	"TennisJump/core"
	"TennisJump/hud"
	"TennisJump/room"
)

const BallSymbol = 0x25CF   // ●
const PaddleSymbol = 0x2588 // █
const JumpSymbol = '^'
const FallSymbol = 'v'

var (
	courtStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	groundStyle = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite)
	leftStyle   = courtStyle.Foreground(tcell.ColorRed)
	rightStyle  = courtStyle.Foreground(tcell.ColorBlue)
	ballStyle   = courtStyle.Foreground(tcell.ColorBlack)
)

// viewport scales court units to terminal cells.
type viewport struct {
	width, height int
}

func (v viewport) col(x float64) int { return int(x * float64(v.width) / core.CourtWidth) }
func (v viewport) row(y float64) int { return int(y * float64(v.height) / core.CourtHeight) }

func drawView(screen tcell.Screen, r *room.Room) {
	w, h := screen.Size()
	v := viewport{width: w, height: h}
	m := r.Match

	screen.Clear()
	fill(screen, 0, 0, w, h, ' ', courtStyle)
	floor := v.row(core.FloorY)
	fill(screen, 0, floor, w, h-floor, ' ', groundStyle)

	drawPaddle(screen, v, m.Paddle(core.SideLeft), leftStyle)
	drawPaddle(screen, v, m.Paddle(core.SideRight), rightStyle)

	b := &m.Ball
	if m.Phase == core.PhasePlaying && b.Y >= 0 {
		screen.SetContent(v.col(b.X), v.row(b.Y), BallSymbol, nil, ballStyle)
	}

	for _, t := range r.Overlay.Texts() {
		drawText(screen, v, t, floor)
	}
	screen.Show()
}

func drawPaddle(screen tcell.Screen, v viewport, p *core.Paddle, style tcell.Style) {
	left, top := v.col(p.Left()), v.row(p.Top())
	width := max1(v.col(p.Right()) - left)
	height := max1(v.row(p.Bottom()) - top)
	fill(screen, left, top, width, height, PaddleSymbol, style)

	switch p.Animation {
	case core.AnimJump:
		screen.SetContent(v.col(p.X), top-1, JumpSymbol, nil, style)
	case core.AnimFall:
		screen.SetContent(v.col(p.X), top+height, FallSymbol, nil, style)
	}
}

func drawText(screen tcell.Screen, v viewport, t hud.Text, floor int) {
	if t.Size <= 0 {
		return
	}
	runes := []rune(t.Str)
	x := v.col(t.X)
	switch t.Align {
	case hud.AlignCenter:
		x -= len(runes) / 2
	case hud.AlignRight:
		x -= len(runes) - 1
	}
	y := v.row(t.Y)

	style := courtStyle
	if y >= floor {
		style = groundStyle
	}
	switch t.Tint {
	case hud.TintRed:
		style = style.Foreground(tcell.ColorRed).Bold(true)
	case hud.TintBlue:
		style = style.Foreground(tcell.ColorBlue).Bold(true)
	case hud.TintWhite:
		style = style.Foreground(tcell.ColorWhite)
	}
	for i, c := range runes {
		screen.SetContent(x+i, y, c, nil, style)
	}
}

func fill(screen tcell.Screen, col, row, width, height int, ch rune, style tcell.Style) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, style)
		}
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
