package telemetry

import (
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *Logger
	once          sync.Once
)

// Logger wraps slog.Logger with a mutable level, the way the toolkit this
// module descends from does.
type Logger struct {
	slog  *slog.Logger
	level *slog.LevelVar
}

// Config controls Logger construction.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or text.
	Format string
	// AddSource adds the call site to each record.
	AddSource bool
}

// DefaultConfig returns the baseline Config.
func DefaultConfig() *Config {
	return &Config{Level: "info", Format: "json"}
}

// New builds a Logger from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	levelVar := &slog.LevelVar{}
	levelVar.Set(parseLevel(cfg.Level))

	opts := &slog.HandlerOptions{Level: levelVar, AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return &Logger{slog: slog.New(handler), level: levelVar}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the process-wide Logger, building it on first use.
func Default() *Logger {
	once.Do(func() {
		if defaultLogger == nil {
			defaultLogger = New(DefaultConfig())
		}
	})
	return defaultLogger
}

// SetDefault replaces the process-wide Logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// SetLevel changes the minimum level logged, without rebuilding the handler.
// It has no effect on a Logger installed by UseHandler, whose handler
// applies its own level.
func (l *Logger) SetLevel(level string) {
	l.level.Set(parseLevel(level))
}

// With returns a child Logger carrying the given fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), level: l.level}
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// Warn logs at warn level through the default Logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Info logs at info level through the default Logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }
