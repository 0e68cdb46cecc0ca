package zapbridge

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/emlog/bridge"
	"github.com/philipp01105/emlog/faultlog"
)

func TestCore_RecordsCaller(t *testing.T) {
	rec := bridge.NewRecorder(nil)
	obs, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(zapcore.NewTee(obs, NewCore(rec, zapcore.InfoLevel)), zap.AddCaller())

	log.Debug("below the bridge level")
	_, _, line, _ := runtime.Caller(0)
	log.Info("boot", zap.Int("stage", 2))
	log.With(zap.String("dev", "adc")).Warn("slow")

	require.Equal(t, 3, logs.Len())
	require.Equal(t, []faultlog.Record{
		{File: "core_test.go", Line: line + 1},
		{File: "core_test.go", Line: line + 2},
	}, rec.Records())
}

func TestCore_SkipsEntriesWithoutCaller(t *testing.T) {
	rec := bridge.NewRecorder(nil)
	log := zap.New(NewCore(rec, zapcore.DebugLevel))

	log.Error("no caller")

	require.Empty(t, rec.Records())
	require.NoError(t, log.Sync())
}
