package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects what the logging entry points do
type Mode uint8

const (
	// ModeDisabled turns every entry point into a no-op
	ModeDisabled Mode = iota
	// ModeRuntime formats leveled lines and hands them to the sink
	ModeRuntime
	// ModeFaultLog records file:line breadcrumbs in the fault accumulator
	ModeFaultLog
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "disabled"
	case ModeRuntime:
		return "runtime"
	case ModeFaultLog:
		return "faultlog"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "disabled", "off", "none":
		return ModeDisabled, nil
	case "runtime", "a":
		return ModeRuntime, nil
	case "faultlog", "fault", "b":
		return ModeFaultLog, nil
	default:
		return ModeDisabled, errors.Errorf("unknown mode %q", s)
	}
}
