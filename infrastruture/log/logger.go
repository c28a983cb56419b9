// Package logger builds the named, colored component loggers used across the app.
package logger

import (
	"errors"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const colorReset = "\033[0m"

// Rotation settings for the optional log file.
const (
	maxFileSizeMB  = 10
	maxFileBackups = 3
	maxFileAgeDays = 7
)

// Options configures a component logger.
type Options struct {
	// File is an optional path; when set, logs are also written there with rotation.
	File string
	// Level is the minimum enabled level. Defaults to debug.
	Level zapcore.Level
}

// New returns a logger for one component. Every line carries the component
// name in the given ANSI color, e.g. New("APP", config.ColorGreen, os.Stdout, nil).
func New(name, color string, out io.Writer, opts *Options) (*zap.SugaredLogger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if out == nil {
		return nil, errors.New("logger output is required")
	}
	if opts == nil {
		opts = &Options{Level: zapcore.DebugLevel}
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalColorLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeName: func(n string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(color + "[" + n + "]" + colorReset)
		},
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), opts.Level),
	}

	if opts.File != "" {
		// Files get plain levels and names; escape codes only help terminals.
		fileCfg := encCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		fileCfg.EncodeName = zapcore.FullNameEncoder
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxFileBackups,
			MaxAge:     maxFileAgeDays,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileCfg), zapcore.AddSync(lj), opts.Level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(name).Sugar(), nil
}
