package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = newConsoleLogger(os.Stderr)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func newConsoleLogger(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return fmt.Sprintf("[%s]", i)
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// Init sets the global level to info, or debug if the DEBUG env var
// is present or debug is true.
func Init(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if _, exists := os.LookupEnv("DEBUG"); exists || debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// SetOutput sets the output destination for the logger
func SetOutput(w io.Writer) {
	log = newConsoleLogger(w)
}

// Logger returns the underlying logger for structured fields.
func Logger() *zerolog.Logger {
	return &log
}

func Debug(msg string, args ...interface{}) {
	log.Debug().Msgf(msg, args...)
}

func Info(msg string, args ...interface{}) {
	log.Info().Msgf(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	log.Warn().Msgf(msg, args...)
}

func Error(msg string, args ...interface{}) {
	log.Error().Msgf(msg, args...)
}
