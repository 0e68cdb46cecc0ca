// Package zerologbridge provides a zerolog.Hook that records the call
// site of every event as a fault breadcrumb.
package zerologbridge

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/emlog/bridge"
	"github.com/philipp01105/emlog/core"
)

// frames belonging to zerolog or this hook are not call sites
var skipPrefixes = []string{
	"github.com/rs/zerolog.",
	"github.com/philipp01105/emlog/bridge/zerologbridge.",
}

// Hook records events at or above its level
type Hook struct {
	rec *bridge.Recorder
	min zerolog.Level
}

// NewHook creates a hook recording events at minLevel or above
func NewHook(rec *bridge.Recorder, minLevel zerolog.Level) *Hook {
	return &Hook{rec: rec, min: minLevel}
}

// Run records the first frame outside zerolog
func (h *Hook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level < h.min || level == zerolog.NoLevel {
		return
	}
	if c := core.CallerOutside(skipPrefixes...); c.Defined {
		h.rec.Record(c.File, c.Line)
	}
}
