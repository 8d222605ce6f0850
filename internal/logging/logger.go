package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at the given level. Prompt output
// goes to stdout, so logging is off unless a level is requested: an empty or
// unrecognised level yields a no-op logger.
func New(level string, w io.Writer) *zap.Logger {
	lvl, ok := parseLevel(level)
	if !ok {
		return zap.NewNop()
	}
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("zprompt")
}

func parseLevel(level string) (zapcore.Level, bool) {
	level = strings.TrimSpace(level)
	if level == "" || strings.EqualFold(level, "off") {
		return 0, false
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return 0, false
	}
	return lvl, true
}
