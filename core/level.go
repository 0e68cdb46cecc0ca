package core

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Level represents the severity level of a log line
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for the general flow of the application
	InfoLevel
	// WarnLevel for abnormal events that do not stop execution (default)
	WarnLevel
	// ErrorLevel for failures of the current activity
	ErrorLevel
	// FatalLevel for unrecoverable failures
	FatalLevel
)

// NumLevels is the number of defined severity levels.
const NumLevels = 5

// LevelDesc describes how a level is rendered in a log header.
type LevelDesc struct {
	Level Level
	Name  string
	Color string
}

// levelTable holds the display name and color of every level. Entries do
// not have to follow severity order; lookups go through levelIndex.
var levelTable = []LevelDesc{
	{Level: DebugLevel, Name: "DBG", Color: "\x1b[37;1m"},   // white
	{Level: InfoLevel, Name: "INFO", Color: "\x1b[32;1m"},   // green
	{Level: WarnLevel, Name: "WARN", Color: "\x1b[33;1m"},   // yellow
	{Level: ErrorLevel, Name: "ERR", Color: "\x1b[31;1m"},   // red
	{Level: FatalLevel, Name: "FATAL", Color: "\x1b[31;1m"}, // red
}

var unknownLevel = LevelDesc{Level: -1, Name: "UNKNOWN"}

var levelIndex [NumLevels]LevelDesc

func init() {
	for i := range levelIndex {
		levelIndex[i] = unknownLevel
	}
	for _, d := range levelTable {
		if d.Level >= 0 && int(d.Level) < NumLevels {
			levelIndex[d.Level] = d
		}
	}
}

// DescFor returns the descriptor of l. Levels outside the table resolve to
// an uncolored "UNKNOWN" descriptor.
func DescFor(l Level) LevelDesc {
	if l < 0 || int(l) >= NumLevels {
		return unknownLevel
	}
	return levelIndex[l]
}

// String returns the display name of the level
func (l Level) String() string {
	return DescFor(l).Name
}

// Color returns the ANSI color sequence of the level
func (l Level) Color() string {
	return DescFor(l).Color
}

// LevelTable returns a copy of the level descriptor table.
func LevelTable() []LevelDesc {
	out := make([]LevelDesc, len(levelTable))
	copy(out, levelTable)
	return out
}

// ValidateLevelTable checks that every level is described exactly once and
// that names and name/color pairs are unambiguous. It reports all problems
// found, not just the first.
func ValidateLevelTable(table []LevelDesc) error {
	var err error
	var seen [NumLevels]bool
	names := make(map[string]Level, len(table))
	pairs := make(map[[2]string]Level, len(table))

	for _, d := range table {
		if d.Level < 0 || int(d.Level) >= NumLevels {
			err = multierr.Append(err, errors.Errorf("level %d out of range", d.Level))
			continue
		}
		if seen[d.Level] {
			err = multierr.Append(err, errors.Errorf("level %d described twice", d.Level))
		}
		seen[d.Level] = true

		if d.Name == "" {
			err = multierr.Append(err, errors.Errorf("level %d has no name", d.Level))
			continue
		}
		if prev, ok := names[d.Name]; ok {
			err = multierr.Append(err, errors.Errorf("name %q used by levels %d and %d", d.Name, prev, d.Level))
		}
		names[d.Name] = d.Level

		pair := [2]string{d.Name, d.Color}
		if prev, ok := pairs[pair]; ok {
			err = multierr.Append(err, errors.Errorf("name/color pair of level %d repeats level %d", d.Level, prev))
		}
		pairs[pair] = d.Level
	}

	for l, ok := range seen {
		if !ok {
			err = multierr.Append(err, errors.Errorf("level %d not described", l))
		}
	}
	return err
}

// ParseLevel converts a level name to a Level. Both the short display names
// (DBG, ERR) and the long forms (DEBUG, ERROR) are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DBG", "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERR", "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return DebugLevel, errors.Errorf("unknown level %q", s)
	}
}
