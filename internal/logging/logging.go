// Package logging initializes the process-wide structured logging setup.
// Structured JSON logs go to stdout, human-readable text logs to stderr,
// and an optional rotated log file keeps a persistent audit trail of
// parse and I/O failures.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

var (
	structuredLogger    *slog.Logger
	humanReadableLogger *slog.Logger
	fileWriter          io.WriteCloser
)

// Options controls logging setup.
type Options struct {
	Level slog.Level
	// FilePath enables rotated file logging when non-empty.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// ParseLevel maps a config-file level name to a slog level, info when
// the name is unknown.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return LevelFatal
	default:
		return slog.LevelInfo
	}
}

// Init configures the structured and human-readable loggers and installs
// the structured logger as the slog default.
func Init(opts Options) {
	structuredOut := io.Writer(os.Stdout)
	if opts.FilePath != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		rotated := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    maxSize,
			MaxBackups: opts.MaxBackups,
		}
		fileWriter = rotated
		structuredOut = io.MultiWriter(os.Stdout, rotated)
	}

	structuredLogger = slog.New(slog.NewJSONHandler(structuredOut, &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: replaceLevelNames,
	}))
	humanReadableLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: replaceLevelNames,
	}))

	slog.SetDefault(structuredLogger)
}

// replaceLevelNames maps the custom trace and fatal levels to readable
// labels in both handlers.
func replaceLevelNames(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		level := a.Value.Any().(slog.Level)
		if label, ok := levelNames[level]; ok {
			a.Value = slog.StringValue(label)
		}
	}
	return a
}

// Logger returns a module-scoped structured logger.
func Logger(module string) *slog.Logger {
	if structuredLogger == nil {
		return slog.Default().With("module", module)
	}
	return structuredLogger.With("module", module)
}

// HumanLogger returns a module-scoped human-readable logger.
func HumanLogger(module string) *slog.Logger {
	if humanReadableLogger == nil {
		return slog.Default().With("module", module)
	}
	return humanReadableLogger.With("module", module)
}

// Close flushes and closes the rotated log file if one was configured.
func Close() error {
	if fileWriter != nil {
		return fileWriter.Close()
	}
	return nil
}
