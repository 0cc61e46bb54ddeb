package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON line logger writing to w. Every entry carries a "ts"
// field rendered in loc, matching the access log format.
func New(w io.Writer, loc *time.Location) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}
	return zerolog.New(w).Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str("ts", time.Now().In(loc).Format(time.RFC3339Nano))
	}))
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// LoadLocation resolves name, falling back to UTC for unknown zones.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
