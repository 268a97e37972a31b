// Package logger builds the zap logger shared by the commands.
package logger

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var validate = validator.New()

// New returns a logger writing human-readable lines to stderr and, when
// cfg.FileName is set, JSON lines to a rotating file. The returned close
// func releases the file; it is a no-op without one.
func New(cfg Config) (*zap.Logger, func() error, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, nil, errors.Wrap(err, "logger: invalid config")
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCfg := encCfg
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}

	closeFn := func() error { return nil }
	if cfg.FileName != "" {
		sink := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(sink), level))
		closeFn = sink.Close
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), closeFn, nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return l, errors.Wrapf(err, "logger: unknown level %q", name)
	}
	return l, nil
}
