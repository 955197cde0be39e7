// Package logging holds the process-wide leveled logger used by the binaries
// and the demo glue. Library packages under pkg/ never log.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(newLogger(os.Stderr))
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}

// Default returns the current logger. Records written through it carry the
// source of the slog call, not of the caller's caller.
func Default() *slog.Logger {
	return logger.Load()
}

func doLog(lvl slog.Level, msg string, args ...any) {
	l := logger.Load()
	if !l.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, doLog, <helper>]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(context.Background(), r)
}

func Debug(msg string, args ...any) { doLog(slog.LevelDebug, msg, args...) }
func Info(msg string, args ...any)  { doLog(slog.LevelInfo, msg, args...) }
func Warn(msg string, args ...any)  { doLog(slog.LevelWarn, msg, args...) }
func Error(msg string, args ...any) { doLog(slog.LevelError, msg, args...) }

// Fatal logs at error level and exits the process with status 1.
func Fatal(msg string, args ...any) {
	doLog(slog.LevelError, msg, args...)
	os.Exit(1)
}

// Redirect sends all logging output to w. The returned function undoes the
// redirect.
func Redirect(w io.Writer) func() {
	old := logger.Swap(newLogger(w))
	return func() {
		logger.Store(old)
	}
}

// SetLevel changes the minimum level that is written. It returns a function
// that restores the previous level.
func SetLevel(lvl slog.Level) func() {
	old := level.Level()
	level.Set(lvl)
	return func() {
		level.Set(old)
	}
}

// Level reports the current minimum level.
func Level() slog.Level {
	return level.Level()
}

// Bracket runs fn with messages at lvl and above propagated.
func Bracket(lvl slog.Level, fn func()) {
	restore := SetLevel(lvl)
	defer restore()
	fn()
}

// ParseLevel accepts the slog level names (debug, info, warn, error),
// case-insensitively, with optional offsets such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: bad level %q: %w", s, err)
	}
	return lvl, nil
}
