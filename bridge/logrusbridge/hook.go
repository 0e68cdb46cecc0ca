// Package logrusbridge provides a logrus.Hook that records the caller of
// every entry as a fault breadcrumb. The logger must have ReportCaller
// enabled; entries without a caller are skipped.
package logrusbridge

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/emlog/bridge"
)

// Hook records entries at its levels
type Hook struct {
	rec    *bridge.Recorder
	levels []logrus.Level
}

// NewHook creates a hook firing for minLevel and every more severe level
func NewHook(rec *bridge.Recorder, minLevel logrus.Level) *Hook {
	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= minLevel {
			levels = append(levels, l)
		}
	}
	return &Hook{rec: rec, levels: levels}
}

// Levels returns the levels the hook fires for
func (h *Hook) Levels() []logrus.Level {
	return h.levels
}

// Fire records the entry's caller
func (h *Hook) Fire(e *logrus.Entry) error {
	if e.Caller != nil {
		h.rec.Record(e.Caller.File, e.Caller.Line)
	}
	return nil
}
