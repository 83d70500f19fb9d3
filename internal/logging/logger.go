package logging

import (
	"fmt"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. Output goes to cfg.File rather than the
// terminal, which the UI owns. Every entry carries a per-process session id.
func New(appEnv string, cfg config.LogConfig) (*zap.SugaredLogger, error) {
	var zcfg zap.Config

	if appEnv == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		// Development config panics on DPanic; a UI process should not.
		zcfg.Development = false
		zcfg.EncoderConfig = zap.NewProductionEncoderConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Encoding = "json"

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zcfg.Level = level
	}

	out := cfg.File
	if out == "" {
		out = "stderr"
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{out}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.Sugar().With("session_id", uuid.NewString()), nil
}
