// Package applog carries the intake pipeline's message log and the
// best-effort execution wrapper the orchestrator uses around side
// effects that must not fail the request.
package applog

import "log/slog"

// Logger writes timestamped lines through slog. Logging can be toggled
// off wholesale, matching the legacy on/off switch; it defaults to on.
type Logger struct {
	slog    *slog.Logger
	enabled bool
}

func New(l *slog.Logger) *Logger {
	return &Logger{slog: l, enabled: true}
}

func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *Logger) Log(message string, args ...any) {
	if !l.enabled {
		return
	}
	l.slog.Info(message, args...)
}

// Try runs fn and swallows its error: a failure is logged (when
// logging is enabled) and never propagates. The returned flag tells the
// caller whether fn succeeded, so calling layers can surface a
// best-effort outcome instead of inheriting hard-wired silence.
func (l *Logger) Try(name string, fn func() error) bool {
	err := fn()
	if err == nil {
		return true
	}
	if l.enabled {
		l.slog.Error("suppressed failure", "op", name, "error", err)
	}
	return false
}
