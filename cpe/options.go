package cpe

// Config configures a Group at [Create] time.
type Config struct {
	// NumThreads is the fixed number of worker goroutines the Group starts.
	// Must be >= 1.
	NumThreads int
	// BusyWait selects the ping/pong handshake mechanism: true spins
	// workers on an atomic version counter and the caller on the job's
	// completion, trading CPU for lower handoff latency; false parks
	// workers on a channel-close broadcast and the caller on completion.
	BusyWait bool
}

// Option configures a [Group] at construction time, beyond [Config].
type Option interface {
	apply(*Group)
}

type optionFunc func(*Group)

func (f optionFunc) apply(g *Group) { f(g) }

// WithLogger attaches a logger for the group's own diagnostics.
func WithLogger(l Logger) Option {
	return optionFunc(func(g *Group) { g.logger = l })
}

// WithMetrics attaches a [Metrics] set the group reports job counts,
// durations, and active-worker counts through.
func WithMetrics(m *Metrics) Option {
	return optionFunc(func(g *Group) { g.metrics = m })
}

// Logger is the collaborator interface the core consumes for error
// reporting, mirroring hsp.Logger so both packages are satisfied
// structurally by *internal/xlog.Logger without either importing it.
type Logger interface {
	Error(origin, format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Error(string, string, ...any) {}
