package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

func InitLogger() *zerolog.Logger {
	return NewLogger(os.Stderr, zerolog.InfoLevel)
}

// NewLogger builds a console logger writing to out and installs it as the
// default context logger.
func NewLogger(out io.Writer, level zerolog.Level) *zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}

	logger := zerolog.New(consoleWriter).
		With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &logger
	return &logger
}

// SetLevel parses a level name such as "debug" or "warn" and applies it globally.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

func Logger(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
