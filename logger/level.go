package logger

import (
	"github.com/philipp01105/emlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ParseLevel converts a string such as "WARN" or "err" to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
