package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"service-dispatch/internal/config"
	"service-dispatch/internal/logx"
)

var logOutput io.Writer = os.Stdout

// NewLogger builds the configured logging backend writing JSON to stdout.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	switch cfg.Log.Backend {
	case "zap":
		var zl zapcore.Level
		if err := zl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(logOutput), zl)
		return logx.NewZapAdapter(zap.New(core)), nil
	default:
		var sl slog.Level
		if err := sl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
		base := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: sl}))
		return logx.NewSlogAdapter(base), nil
	}
}
