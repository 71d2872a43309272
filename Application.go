package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"TennisJump/config"
	"TennisJump/logger"
	"TennisJump/room"
	"TennisJump/terminal"
	"TennisJump/window"
)

func main() {
	config.Flags(pflag.CommandLine)
	pflag.Parse()
	env, _ := pflag.CommandLine.GetString("env")

	settings, err := config.Load("./", env, pflag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := logger.Log.Init(settings.LoggerFile); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if settings.File != "" {
		logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, settings.File, settings.Frontend, settings.TickRate))
	} else {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigDefaultsMsg, env))
	}

	if err := start(settings); err != nil {
		logger.Log.Fatal(err.Error())
	}
}

func start(s config.Settings) error {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	r := room.NewRoom("Tennis Jump", s.Rules, rng, room.Keys{
		Left:    label(s.LeftKey),
		Right:   label(s.RightKey),
		Restart: label(s.RestartKey),
	})

	switch s.Frontend {
	case config.FrontendWindow:
		return window.Run(s, r)
	default:
		// The terminal belongs to tcell from here on.
		logger.Log.SetConsole(false)
		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		return terminal.Run(screen, s, r)
	}
}

func label(key string) string {
	if len(key) == 1 {
		return strings.ToUpper(key)
	}
	return key
}
