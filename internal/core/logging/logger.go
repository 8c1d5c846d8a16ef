package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Nop returns a logger that discards everything. Used as the zero value for
// components constructed without a logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
