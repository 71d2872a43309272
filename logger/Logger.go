package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger()), console: true}

type Logger struct {
	entry   *logrus.Entry
	console bool
}

// Properties mirrors logger.properties.
type Properties struct {
	LogFilename string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
	Level       string
	Console     bool
}

func newLoggerViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Dir(path))

	v.SetDefault("logFilename", "logs/tennisjump.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("console", true)
	return v
}

func readLoggerProperties(v *viper.Viper) (Properties, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Properties{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return Properties{
		LogFilename: cast.ToString(v.Get("logFilename")),
		MaxSize:     cast.ToInt(v.Get("maxSize")),
		MaxBackups:  cast.ToInt(v.Get("maxBackups")),
		MaxAge:      cast.ToInt(v.Get("maxAge")),
		Compress:    cast.ToBool(v.Get("compress")),
		Level:       cast.ToString(v.Get("level")),
		Console:     cast.ToBool(v.Get("console")),
	}, nil
}

// Init points the logger at the rotating file configured in path and watches
// path for level changes.
func (l *Logger) Init(path string) error {
	v := newLoggerViper(path)
	props, err := readLoggerProperties(v)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   props.LogFilename,
		MaxSize:    props.MaxSize,
		MaxBackups: props.MaxBackups,
		MaxAge:     props.MaxAge,
		Compress:   props.Compress,
	}
	l.Configure(loggerConfig, props.Level)
	l.console = props.Console

	if v.ConfigFileUsed() != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			if e.Op&fsnotify.Write == 0 {
				return
			}
			level := cast.ToString(v.Get("level"))
			l.entry.Logger.SetLevel(ParseLevel(level))
			l.entry.WithField("file", e.Name).Info(fmt.Sprintf(LevelReloadedMsg, level))
		})
		v.WatchConfig()
	}
	return nil
}

// Configure sends JSON entries to out at the given level.
func (l *Logger) Configure(out io.Writer, level string) {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(out)
	base.SetLevel(ParseLevel(level))
	l.entry = logrus.NewEntry(base)
}

// SetConsole turns the stdout echo of every message on or off.
func (l *Logger) SetConsole(on bool) { l.console = on }

func ParseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// WithFields returns an entry carrying fields, for structured game events.
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return l.entry.WithFields(fields)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.echo("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.echo("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.echo("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.echo("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.echo("Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) echo(prefix, message string) {
	if l.console {
		fmt.Fprintln(os.Stdout, prefix, message)
	}
}
