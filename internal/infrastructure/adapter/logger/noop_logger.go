package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/core"
)

// NoopLogger discards every entry. It still counts entries at or above its
// level so callers can tell that warnings or errors were raised without
// wiring a real sink
type NoopLogger struct {
	level  atomic.Int32
	counts [core.LogLevelError + 1]atomic.Int64
}

var _ core.Logger = (*NoopLogger)(nil)

// NewNoopLogger creates a discarding logger at info level
func NewNoopLogger() *NoopLogger {
	l := &NoopLogger{}
	l.level.Store(int32(core.LogLevelInfo))
	return l
}

func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level.Store(int32(level))
}

func (l *NoopLogger) GetLevel() core.LogLevel {
	return core.LogLevel(l.level.Load())
}

func (l *NoopLogger) Debug(string, map[string]any) { l.record(core.LogLevelDebug) }

func (l *NoopLogger) Info(string, map[string]any) { l.record(core.LogLevelInfo) }

func (l *NoopLogger) Warn(string, map[string]any) { l.record(core.LogLevelWarn) }

func (l *NoopLogger) Error(string, map[string]any) { l.record(core.LogLevelError) }

func (l *NoopLogger) Flush() error {
	return nil
}

// Count returns how many entries at level were dropped
func (l *NoopLogger) Count(level core.LogLevel) int64 {
	if level < core.LogLevelDebug || level > core.LogLevelError {
		return 0
	}
	return l.counts[level].Load()
}

func (l *NoopLogger) record(level core.LogLevel) {
	if level < l.GetLevel() {
		return
	}
	l.counts[level].Add(1)
}
