package cli

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the package-wide diagnostic logger. It starts as a no-op and
// is replaced during command setup once the verbosity is known.
var logger = zap.NewNop().Sugar()

// newLogger builds a console logger on stderr. Verbose runs log at debug
// level with colored level names; normal runs only surface warnings.
func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}
