// Package zapbridge provides a zapcore.Core that records the caller of
// every zap entry as a fault breadcrumb.
//
//	rec := bridge.NewRecorder(acc)
//	log := zap.New(zapcore.NewTee(normalCore, zapbridge.NewCore(rec, zapcore.InfoLevel)), zap.AddCaller())
//
// Entries without caller information (zap.AddCaller not set) are skipped.
package zapbridge

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/emlog/bridge"
)

// Core is a write-only zapcore.Core that ignores messages and fields
type Core struct {
	zapcore.LevelEnabler
	rec *bridge.Recorder
}

// NewCore creates a core recording entries enabled by enab
func NewCore(rec *bridge.Recorder, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, rec: rec}
}

// With returns the core itself; fields are not recorded
func (c *Core) With([]zapcore.Field) zapcore.Core {
	return c
}

// Check adds the core to ce when the entry's level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write records the entry's caller
func (c *Core) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	if ent.Caller.Defined {
		c.rec.Record(ent.Caller.File, ent.Caller.Line)
	}
	return nil
}

// Sync is a no-op
func (c *Core) Sync() error {
	return nil
}
