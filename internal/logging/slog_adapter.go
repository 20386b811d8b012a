// Lexer's World - Event Globe with Viewer Privacy
// Copyright 2026 Lexer Lux (lexerlux)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lexerlux/lexers-world

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler adapts the global zerolog logger to the slog.Handler
// interface. It exists so libraries that speak slog (the supervision tree
// via sutureslog) write through the same structured pipeline as the rest
// of the application.
type SlogHandler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
}

// NewSlogHandler creates a slog.Handler backed by the global zerolog logger.
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{logger: Logger()}
}

// NewSlogLogger returns a *slog.Logger writing through zerolog.
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler())
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.GetLevel() <= slogToZerologLevel(level)
}

// Handle writes the slog record through zerolog.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))

	for _, attr := range h.attrs {
		event = addAttr(event, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = addAttr(event, attr)
		return true
	})

	event.Msg(record.Message)
	return nil
}

// WithAttrs returns a new handler with the given attributes appended.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &SlogHandler{logger: h.logger, attrs: merged}
}

// WithGroup returns a handler that prefixes attribute keys with the group
// name. Groups are flattened into dotted keys.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	prefixed := make([]slog.Attr, len(h.attrs))
	copy(prefixed, h.attrs)
	return &groupedSlogHandler{SlogHandler: &SlogHandler{logger: h.logger, attrs: prefixed}, prefix: name + "."}
}

// groupedSlogHandler flattens slog groups into dotted attribute keys.
type groupedSlogHandler struct {
	*SlogHandler
	prefix string
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *groupedSlogHandler) Handle(ctx context.Context, record slog.Record) error {
	flat := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		attr.Key = h.prefix + attr.Key
		flat.AddAttrs(attr)
		return true
	})
	return h.SlogHandler.Handle(ctx, flat)
}

// addAttr appends a slog attribute to a zerolog event.
func addAttr(event *zerolog.Event, attr slog.Attr) *zerolog.Event {
	value := attr.Value.Resolve()

	switch value.Kind() {
	case slog.KindString:
		return event.Str(attr.Key, value.String())
	case slog.KindInt64:
		return event.Int64(attr.Key, value.Int64())
	case slog.KindUint64:
		return event.Uint64(attr.Key, value.Uint64())
	case slog.KindFloat64:
		return event.Float64(attr.Key, value.Float64())
	case slog.KindBool:
		return event.Bool(attr.Key, value.Bool())
	case slog.KindDuration:
		return event.Dur(attr.Key, value.Duration())
	case slog.KindTime:
		return event.Time(attr.Key, value.Time())
	default:
		return event.Interface(attr.Key, value.Any())
	}
}

// slogToZerologLevel maps slog levels onto zerolog levels.
func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
