package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"TennisJump/core"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"

	EnvPrefix = "TENNISJUMP"
)

// Settings are the values read from properties/<env>.properties, the
// environment and the command line.
type Settings struct {
	Env        string
	File       string // empty when no properties file was found
	Frontend   string
	TickRate   int
	Seed       int64
	LeftKey    string
	RightKey   string
	RestartKey string
	QuitKey    string
	Rules      core.Rules
	HoldTicks  int
	Scale      float64
	LoggerFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("FRONTEND", FrontendTerminal)
	v.SetDefault("TICK_RATE", core.TicksPerSecond)
	v.SetDefault("SEED", 0)
	v.SetDefault("LEFT_KEY", "a")
	v.SetDefault("RIGHT_KEY", "l")
	v.SetDefault("RESTART_KEY", "r")
	v.SetDefault("QUIT_KEY", "q")
	v.SetDefault("TARGET_SCORE", core.DefaultTargetScore)
	v.SetDefault("MIN_VICTORY_DELTA", core.DefaultMinVictoryDelta)
	v.SetDefault("HOLD_TICKS", 8)
	v.SetDefault("WINDOW_SCALE", 2)
	v.SetDefault("LOGGER_PROPERTIES", "./logger.properties")
}

// Flags declares the command-line overrides on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("env", "local", "properties/<env>.properties to read")
	fs.String("frontend", FrontendTerminal, "terminal or window")
	fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
	fs.Int("tick-rate", core.TicksPerSecond, "simulation ticks per second")
}

// Load reads the settings for env from dir. fs may be nil; when set, flags the
// user changed win over every other source.
func Load(dir, env string, fs *pflag.FlagSet) (Settings, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	v.SetConfigType("properties")
	v.AddConfigPath(dir)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if fs != nil {
		for key, flag := range map[string]string{
			"FRONTEND":  "frontend",
			"SEED":      "seed",
			"TICK_RATE": "tick-rate",
		} {
			if f := fs.Lookup(flag); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read properties for env %s: %w", env, err)
		}
	}

	s := Settings{
		Env:        env,
		File:       v.ConfigFileUsed(),
		Frontend:   strings.ToLower(cast.ToString(v.Get("FRONTEND"))),
		TickRate:   cast.ToInt(v.Get("TICK_RATE")),
		Seed:       cast.ToInt64(v.Get("SEED")),
		LeftKey:    cast.ToString(v.Get("LEFT_KEY")),
		RightKey:   cast.ToString(v.Get("RIGHT_KEY")),
		RestartKey: cast.ToString(v.Get("RESTART_KEY")),
		QuitKey:    cast.ToString(v.Get("QUIT_KEY")),
		Rules: core.Rules{
			TargetScore:     cast.ToInt(v.Get("TARGET_SCORE")),
			MinVictoryDelta: cast.ToInt(v.Get("MIN_VICTORY_DELTA")),
		},
		HoldTicks:  cast.ToInt(v.Get("HOLD_TICKS")),
		Scale:      cast.ToFloat64(v.Get("WINDOW_SCALE")),
		LoggerFile: cast.ToString(v.Get("LOGGER_PROPERTIES")),
	}
	return s, s.validate()
}

func (s Settings) validate() error {
	switch s.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", s.TickRate)
	}
	if s.Rules.TargetScore <= 0 || s.Rules.MinVictoryDelta <= 0 {
		return fmt.Errorf("invalid rules: play to %d, win by %d", s.Rules.TargetScore, s.Rules.MinVictoryDelta)
	}
	for name, key := range map[string]string{"left": s.LeftKey, "right": s.RightKey, "restart": s.RestartKey} {
		if key == "" {
			return fmt.Errorf("%s key is not bound", name)
		}
	}
	keys := []struct{ name, key string }{
		{"left", s.LeftKey}, {"right", s.RightKey}, {"restart", s.RestartKey}, {"quit", s.QuitKey},
	}
	for i, a := range keys {
		for _, b := range keys[i+1:] {
			if a.key != "" && strings.EqualFold(a.key, b.key) {
				return fmt.Errorf("%s and %s share key %q", a.name, b.name, a.key)
			}
		}
	}
	if s.HoldTicks <= 0 {
		return fmt.Errorf("hold ticks must be positive, got %d", s.HoldTicks)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", s.Scale)
	}
	return nil
}
