// Package logging builds the zap logger used as the controller's log sink.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts a --log-level value to a zap level. Names are parsed
// by zapcore; "warning" is accepted as an alias for "warn". Levels above
// error are rejected since nothing in gamectl logs at them.
func ParseLevel(s string) (zapcore.Level, error) {
	if strings.EqualFold(s, "warning") {
		s = "warn"
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil || lvl > zapcore.ErrorLevel {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level: %q (expected debug, info, warn, or error)", s)
	}
	return lvl, nil
}

// New returns a console logger writing to w at the given level. stdout is
// reserved for command output, so callers normally pass os.Stderr.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
