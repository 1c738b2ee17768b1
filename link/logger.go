package link

// Logger receives diagnostic output from a Link's connection lifecycle
// and reassembly error counters. Both methods must be safe for concurrent
// use, since recvLoop and Connect/Accept call them from different
// goroutines. The zero value of noopLogger — used when no Logger is
// configured — discards everything, keeping the default cost of a Link
// at zero even though an embedder can opt into full printf-style logging
// with WithLogger and a small adapter whose Debugf/Warnf forward to, for
// example, log.Printf.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}

// WithLogger configures the Logger a Link reports connection lifecycle
// and reassembly diagnostics to. The default is a silent no-op.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = noopLogger{}
		}
		c.Logger = l
	}
}
