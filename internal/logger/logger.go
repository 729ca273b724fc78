// internal/logger/logger.go
//
// Structured logger (Zap + Lumberjack).
//
// Console output goes to stderr so stdout carries only command results.
// When a log directory is configured, the same events are also written as
// JSON to `<dir>/bookcheck.log`, rotated and compressed by Lumberjack.
package logger

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/atvirokodosprendimai/bookcheck/internal/config"
)

// New builds a *zap.Logger from cfg and installs it as the process-wide
// default via zap.ReplaceGlobals.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	errSink := zapcore.AddSync(os.Stderr)

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, err
		}
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "bookcheck.log"),
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, level))
		errSink = fileSink
	}

	if cfg.Console {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	if len(cores) == 0 {
		return nil, errors.New("logger: no sink configured, set log.dir or log.console")
	}

	z := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(errSink))
	zap.ReplaceGlobals(z)

	z.Debug("logger online", zap.String("level", level.String()), zap.Bool("console", cfg.Console))
	return z, nil
}
