package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// systemClock implements secondary.Clock with the wall clock in UTC.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall clock.
func SystemClock() secondary.Clock { return systemClock{} }

func clockOrDefault(c secondary.Clock) secondary.Clock {
	if c == nil {
		return systemClock{}
	}
	return c
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
