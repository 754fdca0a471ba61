package pklog

import (
	"context"
	"log/slog"
	"os"
)

// SlogAdapter wraps a *slog.Logger to satisfy Logger. It is the
// adapter applications reach for when they want this module's
// diagnostics folded into their own structured logs rather than
// discarded by Nop.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps l. If l is nil, a text handler writing to
// os.Stderr at Info level is created.
func NewSlogAdapter(l *slog.Logger) *SlogAdapter {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return &SlogAdapter{logger: l}
}

func (a *SlogAdapter) Debug(msg string, fields ...Field) {
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, toAttrs(fields)...)
}

func (a *SlogAdapter) Info(msg string, fields ...Field) {
	a.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, toAttrs(fields)...)
}

func toAttrs(fields []Field) []slog.Attr {
	attrs := make([]slog.Attr, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	return attrs
}
