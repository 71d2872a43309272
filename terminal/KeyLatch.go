package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"TennisJump/core"
)

// KeyLatch turns key press events into held state. Terminals only report
// presses (and auto-repeats), so a key counts as held for hold ticks after
// the last event for it.
type KeyLatch struct {
	hold    int
	now     int
	pressed map[rune]int
}

func NewKeyLatch(hold int) *KeyLatch {
	if hold < 1 {
		hold = 1
	}
	return &KeyLatch{hold: hold, pressed: make(map[rune]int)}
}

func (l *KeyLatch) Press(r rune) { l.pressed[unicode.ToLower(r)] = l.now }

// Advance moves the latch to the next tick.
func (l *KeyLatch) Advance() { l.now++ }

func (l *KeyLatch) IsHeld(r rune) bool {
	at, ok := l.pressed[unicode.ToLower(r)]
	return ok && l.now-at < l.hold
}

// Bindings maps each match action to a terminal key.
type Bindings map[core.Action]rune

// NewBindings binds the ready and jump actions of a side to the same key.
func NewBindings(left, right, restart string) (Bindings, error) {
	b := Bindings{}
	for _, k := range []struct {
		name    string
		actions []core.Action
	}{
		{left, []core.Action{core.ActionLeftJump, core.ActionLeftReady}},
		{right, []core.Action{core.ActionRightJump, core.ActionRightReady}},
		{restart, []core.Action{core.ActionRestart}},
	} {
		r, err := keyRune(k.name)
		if err != nil {
			return nil, err
		}
		for _, a := range k.actions {
			b[a] = r
		}
	}
	return b, nil
}

var runeNames = map[string]rune{
	"space": ' ',
}

// keyRune resolves a key name to the rune the terminal reports for it.
// Names are either a single character or one of runeNames.
func keyRune(key string) (rune, error) {
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return unicode.ToLower(r), nil
	}
	if r, ok := runeNames[strings.ToLower(key)]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("no terminal key named %q", key)
}

// latchControls answers core.Controls from a KeyLatch.
type latchControls struct {
	latch *KeyLatch
	keys  Bindings
}

func (c latchControls) Held(a core.Action) bool {
	r, ok := c.keys[a]
	return ok && c.latch.IsHeld(r)
}
