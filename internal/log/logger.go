package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Level is one of debug, info, warn,
// error; anything else falls back to info. Set PALPITE_LOG_JSON=1 to
// emit raw JSON instead of the console format.
func New(level string) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	if os.Getenv("PALPITE_LOG_JSON") == "1" {
		output = os.Stdout
	}

	logger := zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()
	return &logger
}

func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(level)
	if level == "warning" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
