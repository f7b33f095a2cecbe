// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console zap logger writing to dst at Warn level,
// so the happy path stays silent on stderr.
func NewLogger(dst io.Writer) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "" // one-shot batch tool; timestamps are noise
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(dst),
		zapcore.WarnLevel,
	)
	return zap.New(core)
}
