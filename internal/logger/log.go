// Package logger installs the process-wide slog default: JSON records to
// stdout and, when a file is configured, a size-rotated copy on disk. Event
// names follow a dotted noun.verb convention ("sync.loaded", "login.ok") so
// pipelines can filter on prefix.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/0929smj/chun2/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init must run once at startup, before anything logs.
func Init(cfg config.LogConfig) {
	h := slog.NewJSONHandler(output(cfg), &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	slog.SetDefault(slog.New(h))
	Info("logger.ready", "level", cfg.Level, "file", cfg.File)
}

func output(cfg config.LogConfig) io.Writer {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	switch len(writers) {
	case 0:
		return os.Stdout
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
