// Package logging создает логгер приложения на базе zap
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel уровень по умолчанию: видны предупреждения о пропущенных записях
const DefaultLevel = "warn"

// ParseLevel разбирает уровень логирования (debug, info, warn, error)
func ParseLevel(raw string) (zapcore.Level, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		value = DefaultLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return zapcore.WarnLevel, errors.Wrapf(err, "parse log level %q", raw)
	}
	return level, nil
}

// New создает консольный логгер, пишущий в stderr, чтобы не смешиваться с выводом меню
func New(level string) (*zap.Logger, error) {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter создает консольный логгер с указанным приемником
func NewWithWriter(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
