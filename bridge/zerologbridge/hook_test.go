package zerologbridge_test

import (
	"io"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/emlog/bridge"
	"github.com/philipp01105/emlog/bridge/zerologbridge"
	"github.com/philipp01105/emlog/faultlog"
)

func TestHook_RecordsCallSite(t *testing.T) {
	rec := bridge.NewRecorder(nil)
	log := zerolog.New(io.Discard).Hook(zerologbridge.NewHook(rec, zerolog.InfoLevel))

	log.Debug().Msg("below level")
	_, _, line, _ := runtime.Caller(0)
	log.Info().Int("rpm", 900).Msg("fan")
	log.Error().Msgf("stall at %d", 0)

	require.Equal(t, []faultlog.Record{
		{File: "hook_test.go", Line: line + 1},
		{File: "hook_test.go", Line: line + 2},
	}, rec.Records())
}

func TestHook_SkipsNoLevel(t *testing.T) {
	rec := bridge.NewRecorder(nil)
	log := zerolog.New(io.Discard).Hook(zerologbridge.NewHook(rec, zerolog.DebugLevel))

	log.Log().Msg("no level")

	require.Empty(t, rec.Records())
}
