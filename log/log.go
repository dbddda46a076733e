// Package log provides preconfigured slog loggers that render header
// values in redacted form.
package log

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/valeko/httpval/header"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(hdr header.Header) slog.Value {
		return slog.StringValue(hdr.Redacted())
	}),
	slogformatter.FormatByType(func(hdrs []header.Header) slog.Value {
		attrs := make([]slog.Attr, len(hdrs))
		for i, hdr := range hdrs {
			attrs[i] = slog.String(string(hdr.CanonicName()), redactedValue(hdr))
		}
		return slog.GroupValue(attrs...)
	}),
)

func redactedValue(hdr header.Header) string {
	if header.IsSensitive(hdr.Name()) {
		return "***"
	}
	return hdr.Value()
}

// WrapHandler wraps h with the header-aware formatting layer. Use it to
// attach redaction to a custom handler.
func WrapHandler(h slog.Handler) slog.Handler { return newHandler(h) }

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})
