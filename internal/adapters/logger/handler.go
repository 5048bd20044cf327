package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/mbedconf/internal/ui/output"
	"go.trai.ch/mbedconf/internal/ui/style"
)

// PrettyHandler is a slog.Handler for terminals. It prints one line per
// record: the badged message followed by key=value pairs, with group names
// joined into the keys.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// bound holds the attributes from WithAttrs, already rendered.
	bound string
	// scope is the dotted group prefix applied to later attributes.
	scope string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single colored line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	badge := badgeFor(r.Level)

	var line strings.Builder
	line.WriteString(badge.Decorate(r.Message))
	line.WriteString(h.bound)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&line, h.scope, a)
		return true
	})

	colored := h.out.String(line.String()).Foreground(h.out.Color(string(badge.Color)))
	_, err := io.WriteString(h.out, colored.String()+"\n")
	return err
}

// WithAttrs returns a handler that prints attrs on every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.bound)
	for _, a := range attrs {
		appendAttr(&b, h.scope, a)
	}

	next := *h
	next.bound = b.String()
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	next := *h
	next.scope = h.scope + name + "."
	return &next
}

func badgeFor(level slog.Level) style.Badge {
	switch {
	case level >= slog.LevelError:
		return style.Failure
	case level >= slog.LevelWarn:
		return style.Caution
	case level < slog.LevelInfo:
		return style.Trace
	default:
		return style.Plain
	}
}

// appendAttr renders a as " scope.key=value". Group values are flattened and
// empty attributes are dropped, as slog.Handler requires.
func appendAttr(b *strings.Builder, scope string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := scope
		if a.Key != "" {
			inner = scope + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, inner, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(scope)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
