package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
}

type Config struct {
	Level     string   `yaml:"level"`
	Output    []string `yaml:"output"`
	ErrOutput []string `yaml:"errOutput"`
}

type zapLogger struct {
	*zap.SugaredLogger
}

func New(cfg Config) (Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse level error: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)

	if len(cfg.Output) != 0 {
		zc.OutputPaths = cfg.Output
	}

	if len(cfg.ErrOutput) != 0 {
		zc.ErrorOutputPaths = cfg.ErrOutput
	}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger error: %w", err)
	}

	return zapLogger{l.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return zapLogger{zap.NewNop().Sugar()}
}
