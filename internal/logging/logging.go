// Package logging configures the zerolog logger for the packing CLI and
// provides the placement-progress observer adapter.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/srinath-46/stability-model/internal/engine"
	"github.com/srinath-46/stability-model/internal/model"
)

// New builds a console logger writing to out at the given level. Unknown
// level strings fall back to info.
func New(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// Progress returns a placement observer that logs each placement. The
// engine treats the observer as a synchronous no-op side channel;
// logging here never influences the packing outcome.
func Progress(log zerolog.Logger) engine.Observer {
	return func(placed model.PlacedItem, count int, usedVolume float64) {
		log.Info().
			Str("item", placed.Item.Label).
			Str("id", placed.Item.ID).
			Float64("x", placed.Position.X).
			Float64("y", placed.Position.Y).
			Float64("z", placed.Position.Z).
			Float64("stability", placed.Stability).
			Int("count", count).
			Float64("usedVolume", usedVolume).
			Msg("placed item")
	}
}
