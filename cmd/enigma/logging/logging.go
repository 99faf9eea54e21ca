package logging

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/sergeii/enigma/pkg/logutils"
)

var (
	ErrInvalidLogOutput = errors.New("logging: unknown output format")
	ErrInvalidLogLevel  = errors.New("logging: unknown level")
)

type Config struct {
	LogOutput string
	LogLevel  string
}

type Result struct {
	fx.Out

	Logger   *zerolog.Logger
	LogLevel zerolog.Level
}

func Provide(cfg Config) (Result, error) {
	logger, lvl, err := New(cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Logger:   logger,
		LogLevel: lvl,
	}, nil
}

func New(cfg Config) (*zerolog.Logger, zerolog.Level, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	zerolog.DurationFieldUnit = time.Second
	zerolog.CallerMarshalFunc = logutils.ShortCallerFormatter

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return nil, zerolog.NoLevel, ErrInvalidLogLevel
	}

	output, err := selectOutput(cfg.LogOutput)
	if err != nil {
		return nil, zerolog.NoLevel, err
	}

	logger := zerolog.New(output).Level(lvl).With().Timestamp().Caller().Logger()
	return &logger, lvl, nil
}

func selectOutput(name string) (io.Writer, error) {
	switch name {
	case "console", "":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}, nil
	case "stdout":
		return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "stderr":
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: true}, nil
	case "json":
		return os.Stdout, nil
	default:
		return nil, ErrInvalidLogOutput
	}
}

// NoGlobal silences the global logger, so that anything
// logging without an injected logger is caught early.
func NoGlobal() {
	log.Logger = zerolog.Nop()
}

func FxLogger(logger *zerolog.Logger, lvl zerolog.Level) fxevent.Logger {
	switch lvl { // nolint: exhaustive
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return &fxevent.ConsoleLogger{
			W: logger,
		}
	default:
		return fxevent.NopLogger
	}
}
