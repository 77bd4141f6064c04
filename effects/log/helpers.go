package log

import (
	"io"

	"github.com/on-the-ground/effect_drive_go/effects"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RegisterConsole installs a log handler writing human-readable debug output to w.
// Handy in tests and examples where structured JSON would get in the way.
func RegisterConsole(hm effects.HandlerMap, w io.Writer) effects.HandlerMap {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return Register(hm, zap.New(consoleCore))
}
