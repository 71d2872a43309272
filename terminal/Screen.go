package terminal

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell"

	"TennisJump/config"
	"TennisJump/logger"
	"TennisJump/room"
)

// NewScreen opens the real terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return screen, nil
}

func initScreen(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(courtStyle)
	screen.HideCursor()
	return nil
}

// initUserInput forwards screen events to the game loop until done closes.
func initUserInput(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	inputChan := make(chan tcell.Event)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case inputChan <- ev:
			case <-done:
				return
			}
		}
	}()

	return inputChan
}

// Run plays r on screen until the quit key, Escape or Ctrl-C is pressed.
// It takes ownership of screen and finalizes it before returning.
func Run(screen tcell.Screen, s config.Settings, r *room.Room) error {
	if err := initScreen(screen); err != nil {
		return err
	}
	defer screen.Fini()
	return play(screen, s, r)
}

func play(screen tcell.Screen, s config.Settings, r *room.Room) error {
	keys, err := NewBindings(s.LeftKey, s.RightKey, s.RestartKey)
	if err != nil {
		return err
	}
	var quit rune
	if s.QuitKey != "" {
		if quit, err = keyRune(s.QuitKey); err != nil {
			return err
		}
	}

	logger.Log.Info(fmt.Sprintf(logger.FrontendStartMsg, config.FrontendTerminal))
	defer logger.Log.Info(fmt.Sprintf(logger.FrontendStopMsg, config.FrontendTerminal))

	done := make(chan struct{})
	defer close(done)
	inputChan := initUserInput(screen, done)

	latch := NewKeyLatch(s.HoldTicks)
	controls := latchControls{latch: latch, keys: keys}

	ticker := time.NewTicker(time.Second / time.Duration(s.TickRate))
	defer ticker.Stop()

	drawView(screen, r)
	for {
		select {
		case ev := <-inputChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyRune:
					if quit != 0 && unicode.ToLower(ev.Rune()) == quit {
						return nil
					}
					latch.Press(ev.Rune())
				}
			}
		case <-ticker.C:
			r.Tick(controls)
			latch.Advance()
			drawView(screen, r)
		}
	}
}
