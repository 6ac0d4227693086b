// Package log provides category-tagged structured logging for beadmatch.
//
// A Logger is created once at startup with New and handed to every
// collaborator that needs it. A nil *Logger is valid and discards everything,
// so optional dependencies can be left unset in tests.
//
//	logger, err := log.New(os.Stderr, log.Options{Level: "debug"})
//	if err != nil {
//	    return err
//	}
//	logger.Debug(log.CatCatalog, "Opening catalog", "path", path)
package log

import (
	"fmt"
	"io"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Category identifies the subsystem emitting a log line.
type Category string

const (
	CatCatalog Category = "catalog"
	CatSearch  Category = "search"
	CatImage   Category = "image"
	CatUI      Category = "ui"
	CatConfig  Category = "config"
)

// Options configures a Logger.
type Options struct {
	// Level is one of "debug", "info", "warn", "error". Empty means "error".
	Level string
	// Format is "text" (default), "logfmt" or "json".
	Format string
	// Timestamp enables a leading timestamp on each line.
	Timestamp bool
}

// Logger writes structured, category-tagged log lines.
type Logger struct {
	l *charmlog.Logger
}

// New creates a Logger writing to w.
func New(w io.Writer, opts Options) (*Logger, error) {
	level := charmlog.ErrorLevel
	if opts.Level != "" {
		parsed, err := charmlog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	formatter := charmlog.TextFormatter
	switch strings.ToLower(opts.Format) {
	case "", "text":
	case "logfmt":
		formatter = charmlog.LogfmtFormatter
	case "json":
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	l := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.Timestamp,
		TimeFormat:      time.StampMilli,
		Prefix:          "beadmatch",
	})
	return &Logger{l: l}, nil
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{l: charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel})}
}

// Debug logs at debug level.
func (lg *Logger) Debug(cat Category, msg string, keyvals ...any) {
	if lg == nil {
		return
	}
	lg.l.Debug(msg, withCategory(cat, keyvals)...)
}

// Info logs at info level.
func (lg *Logger) Info(cat Category, msg string, keyvals ...any) {
	if lg == nil {
		return
	}
	lg.l.Info(msg, withCategory(cat, keyvals)...)
}

// Warn logs at warn level.
func (lg *Logger) Warn(cat Category, msg string, keyvals ...any) {
	if lg == nil {
		return
	}
	lg.l.Warn(msg, withCategory(cat, keyvals)...)
}

// Error logs at error level.
func (lg *Logger) Error(cat Category, msg string, keyvals ...any) {
	if lg == nil {
		return
	}
	lg.l.Error(msg, withCategory(cat, keyvals)...)
}

// ErrorErr logs at error level with err attached under the "error" key.
func (lg *Logger) ErrorErr(cat Category, msg string, err error, keyvals ...any) {
	if lg == nil {
		return
	}
	kv := append([]any{"error", err}, keyvals...)
	lg.l.Error(msg, withCategory(cat, kv)...)
}

func withCategory(cat Category, keyvals []any) []any {
	out := make([]any, 0, len(keyvals)+2)
	out = append(out, "cat", string(cat))
	return append(out, keyvals...)
}
