package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/logger"
)

// Handler is an adapter that implements slog.Handler on top of a Logger
type Handler struct {
	log   *logger.Logger
	attrs []slog.Attr
	group string
}

// New creates a new slog.Handler writing to log. A nil log is replaced by
// a disabled logger.
func New(log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{log: log}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	switch h.log.Mode() {
	case logger.ModeFaultLog:
		return true
	case logger.ModeRuntime:
		return h.log.Enabled(slogLevelToCore(level))
	default:
		return false
	}
}

// Handle renders the record's message and attributes and logs it with the
// record's origin.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var file, function string
	var line int
	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		file, line = frame.File, frame.Line
		function = core.ShortFuncName(frame.Function)
	}

	if h.log.Mode() != logger.ModeRuntime {
		h.log.Fault(file, line)
		return nil
	}

	var sb strings.Builder
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		appendAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	h.log.Log(slogLevelToCore(r.Level), file, function, line, "%s", sb.String())
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &Handler{log: h.log, attrs: newAttrs, group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{log: h.log, attrs: h.attrs, group: newGroup}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
