package logging

import (
	"context"
	"log/slog"
)

// Shared structured-log field names. The console handler treats
// FieldComponent specially and lifts it into the message prefix.
const (
	FieldComponent     = "component"
	FieldFramework     = "framework"
	FieldStatus        = "status"
	FieldCorrelationID = "correlation_id"
	// FieldAlert flags records an operator should notice when scanning logs.
	FieldAlert = "alert"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Alert(value string) slog.Attr { return slog.String(FieldAlert, value) }

// Error keeps one key for failure details across all components.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// discardHandler mirrors slog.DiscardHandler, which needs a Go 1.24+
// toolchain; it drops every record and reports all levels disabled.
type discardHandler struct{}

func (dh discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (dh discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (dh discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return dh }
func (dh discardHandler) WithGroup(string) slog.Handler             { return dh }

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(discardHandler{})
}

// NewComponentLogger scopes logger to a named component. A nil logger yields
// a no-op base so constructors can run before logging is wired.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}
