// Package logging provides structured logging using Go's slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// RunIDKey is the context key for search and ingest run IDs.
	RunIDKey ContextKey = "run_id"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	output        io.Writer = os.Stderr
	curLevel                = LevelInfo
	curFormat               = FormatJSON
)

func init() {
	InitLogger(LevelInfo, FormatJSON)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatJSON outputs logs in JSON format.
	FormatJSON Format = iota
	// FormatText outputs logs in human-readable text format.
	FormatText
)

// ParseLevel accepts debug, info, warn (or warning) and error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, errors.NewValidation("log_level", fmt.Sprintf("unknown level %q", s))
}

// ParseFormat accepts json and text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	}
	return FormatJSON, errors.NewValidation("log_format", fmt.Sprintf("unknown format %q", s))
}

// InitLogger initializes the global logger with the specified level and
// format. Output goes to the writer set by SetOutput, stderr by default.
func InitLogger(level Level, format Format) {
	mu.Lock()
	defer mu.Unlock()
	curLevel, curFormat = level, format
	rebuild()
}

// SetOutput redirects the global logger and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	rebuild()
	return prev
}

// rebuild must be called with mu held.
func rebuild() {
	var slogLevel slog.Level
	switch curLevel {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if curFormat == FormatJSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// LoggerFromContext returns a logger with context values attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if runID := GetRunID(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// DebugContext logs a debug message with context.
func DebugContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Debug(msg, args...)
}

// InfoContext logs an info message with context.
func InfoContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Info(msg, args...)
}

// WarnContext logs a warning message with context.
func WarnContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Warn(msg, args...)
}

// ErrorContext logs an error message with context.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	LoggerFromContext(ctx).Error(msg, args...)
}

// Diagnostic logs a recovered data-quality problem at warn level. Known
// diagnostic errors are broken out into fields.
func Diagnostic(ctx context.Context, err error, args ...any) {
	if err == nil {
		return
	}
	allArgs := append(diagnosticAttrs(err), args...)
	LoggerFromContext(ctx).Warn("diagnostic", allArgs...)
}

func diagnosticAttrs(err error) []any {
	var (
		unmapped  *errors.UnmappedCodepointError
		malformed *errors.MalformedVerseError
		noEntry   *errors.NoTableEntryError
	)
	switch {
	case errors.As(err, &unmapped):
		return []any{
			"kind", "unmapped_codepoint",
			"scalar", fmt.Sprintf("U+%04X", unmapped.Scalar),
			"position", unmapped.Position,
		}
	case errors.As(err, &malformed):
		return []any{
			"kind", "malformed_verse",
			"mark", fmt.Sprintf("U+%04X", malformed.Mark),
			"position", malformed.Position,
			"reason", malformed.Reason,
		}
	case errors.As(err, &noEntry):
		return []any{
			"kind", "no_table_entry",
			"scalar", fmt.Sprintf("U+%04X", noEntry.Scalar),
			"clump", noEntry.Clump,
		}
	}
	return []any{"kind", "other", "error", err.Error()}
}

// SearchCompleted logs the outcome of a corpus search.
func SearchCompleted(ctx context.Context, query string, occurrences, verses int, duration time.Duration, args ...any) {
	allArgs := []any{
		"query", query,
		"occurrences", occurrences,
		"verses", verses,
		"duration_ms", duration.Milliseconds(),
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("search_completed", allArgs...)
}

// BookIngested logs a book written to the store.
func BookIngested(ctx context.Context, code string, verses, changed int, args ...any) {
	allArgs := []any{
		"book", code,
		"verses", verses,
		"changed", changed,
	}
	allArgs = append(allArgs, args...)
	LoggerFromContext(ctx).Info("book_ingested", allArgs...)
}
