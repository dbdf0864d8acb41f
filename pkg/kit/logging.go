package kit

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(service, env string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": service}

	l, _ := cfg.Build()
	return l
}
