// Package logger wraps zap construction so the rest of the application
// receives a configured *zap.Logger.
package logger

import "go.uber.org/zap"

// Logger holds the application logger.
type Logger struct {
	// Log is the underlying zap logger. It is a no-op until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the no-op logger with a production zap logger at the given
// level ("Debug", "Info", "Warn", "Error", ...).
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	log, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = log
	return nil
}
