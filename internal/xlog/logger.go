// Package xlog adapts a structured logiface/stumpy logger into the small
// Error(origin, format, args...) shape the core packages (hsp, cpe)
// consume, with a catrate limiter throttling repeated identical failures so
// a wedged worker can't flood the sink.
package xlog

import (
	"fmt"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// defaultRates bounds a given origin to at most 5 log lines per second and
// 50 per minute; beyond that, Error silently drops the line.
var defaultRates = map[time.Duration]int{
	time.Second: 5,
	time.Minute: 50,
}

// Logger wraps a logiface.Logger[*stumpy.Event] with origin-scoped rate
// limiting. The zero value is not usable; build one with [New].
type Logger struct {
	base    *logiface.Logger[*stumpy.Event]
	limiter *catrate.Limiter
}

// Option configures a Logger at construction time.
type Option func(*config)

type config struct {
	stumpyOptions []stumpy.Option
	rates         map[time.Duration]int
}

// WithWriter overrides the destination stumpy writes JSON lines to.
func WithWriter(opts ...stumpy.Option) Option {
	return func(c *config) { c.stumpyOptions = append(c.stumpyOptions, opts...) }
}

// WithRates overrides the default per-origin throttling windows.
func WithRates(rates map[time.Duration]int) Option {
	return func(c *config) { c.rates = rates }
}

// New builds a Logger backed by stumpy's JSON writer.
func New(opts ...Option) *Logger {
	var c config
	c.rates = defaultRates
	for _, o := range opts {
		o(&c)
	}

	return &Logger{
		base:    stumpy.L.New(stumpy.L.WithStumpy(c.stumpyOptions...)),
		limiter: catrate.NewLimiter(c.rates),
	}
}

// Error reports a failure at origin, formatted per fmt.Sprintf(format,
// args...). Repeated calls for the same origin beyond the configured rate
// are silently dropped — the caller must not rely on Error for control
// flow, only diagnostics.
func (l *Logger) Error(origin, format string, args ...any) {
	if _, ok := l.limiter.Allow(origin); !ok {
		return
	}
	l.base.Err().
		Str(`origin`, origin).
		Log(fmt.Sprintf(format, args...))
}
