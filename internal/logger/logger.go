// Package logger configures the application's zerolog logger.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Outside production the output is
// the human-readable console writer; in production it stays raw JSON.
func New(appName, environment string) zerolog.Logger {
	var l zerolog.Logger
	if strings.EqualFold(environment, "production") {
		l = zerolog.New(os.Stdout)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return l.With().
		Timestamp().
		Str("app", appName).
		Logger()
}
