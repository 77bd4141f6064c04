// Package log provides a write-only logging effect handled by zap.
package log

import (
	"context"

	"github.com/on-the-ground/effect_drive_go/effects"
	"go.uber.org/zap"
)

// Level defines the severity level for log messages.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events that might still allow the application to continue running.
	LevelError Level = "error"

	// LevelDebug is used for debugging messages with detailed internal information.
	LevelDebug Level = "debug"
)

// Entry is the log effect.
// It contains the log level, message string, and optional structured fields.
type Entry struct {
	Level   Level
	Message string
	Fields  map[string]any
}

// ZapHandler returns a write-only handler that writes Entry effects to logger.
func ZapHandler(logger *zap.Logger) func(context.Context, Entry) error {
	return func(_ context.Context, entry Entry) error {
		fields := make([]zap.Field, 0, len(entry.Fields))
		for k, v := range entry.Fields {
			fields = append(fields, zap.Any(k, v))
		}

		switch entry.Level {
		case LevelInfo:
			logger.Info(entry.Message, fields...)
		case LevelWarn:
			logger.Warn(entry.Message, fields...)
		case LevelError:
			logger.Error(entry.Message, fields...)
		case LevelDebug:
			logger.Debug(entry.Message, fields...)
		default:
			logger.Info(entry.Message, fields...)
		}
		return nil
	}
}

// Register installs the zap log handler for Entry effects in hm.
func Register(hm effects.HandlerMap, logger *zap.Logger) effects.HandlerMap {
	return effects.OnWriteOnly(hm, ZapHandler(logger))
}

// Emit yields a log Entry from within a computation.
func Emit(yield effects.Yield, level Level, msg string, fields map[string]any) {
	effects.RaiseVoid(yield(Entry{
		Level:   level,
		Message: msg,
		Fields:  fields,
	}))
}
