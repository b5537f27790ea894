// internal/logging/logging.go
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns the run logger: console format on w (normally stderr).
// quiet raises the level to warnings so progress and summaries stay out of
// scripted pipelines.
func New(w io.Writer, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
