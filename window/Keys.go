package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"TennisJump/core"
)

var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"space":  ebiten.KeySpace,
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"enter":  ebiten.KeyEnter,
	"escape": ebiten.KeyEscape,
}

func lookupKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("no window key named %q", name)
	}
	return k, nil
}

// keyboard answers core.Controls from ebiten's keyboard state.
type keyboard map[core.Action]ebiten.Key

func newKeyboard(left, right, restart string) (keyboard, error) {
	kb := keyboard{}
	for _, b := range []struct {
		name    string
		actions []core.Action
	}{
		{left, []core.Action{core.ActionLeftJump, core.ActionLeftReady}},
		{right, []core.Action{core.ActionRightJump, core.ActionRightReady}},
		{restart, []core.Action{core.ActionRestart}},
	} {
		k, err := lookupKey(b.name)
		if err != nil {
			return nil, err
		}
		for _, a := range b.actions {
			kb[a] = k
		}
	}
	return kb, nil
}

func (kb keyboard) Held(a core.Action) bool {
	k, ok := kb[a]
	return ok && ebiten.IsKeyPressed(k)
}
