// Package logging builds the zap loggers used by programs in this module.
package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New returns a production logger when GO_ENVIRONMENT=production and a
// colourised development logger otherwise. verbose enables debug output.
func New(verbose bool, opts ...zap.Option) (*zap.Logger, error) {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return logCfg.Build(opts...)
}
