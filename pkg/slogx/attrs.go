package slogx

import (
	"log/slog"
	"time"
)

// Error returns a slog.Attr for an error under the conventional "error" key.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Model returns a slog.Attr for a model identifier.
func Model(name string) slog.Attr {
	return slog.String("model", name)
}

// Provider returns a slog.Attr for a provider identifier.
func Provider[T ~string](name T) slog.Attr {
	return slog.String("provider", string(name))
}

// Attempt returns a slog.Attr for a 1-based attempt counter.
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Backoff returns a slog.Attr for a retry wait duration.
func Backoff(d time.Duration) slog.Attr {
	return slog.Duration("backoff", d)
}
