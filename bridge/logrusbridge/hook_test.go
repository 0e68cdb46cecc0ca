package logrusbridge

import (
	"io"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/emlog/bridge"
	"github.com/philipp01105/emlog/faultlog"
)

func newLogger(h logrus.Hook, reportCaller bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	l.SetReportCaller(reportCaller)
	l.AddHook(h)
	return l
}

func TestHook_RecordsCaller(t *testing.T) {
	rec := bridge.NewRecorder(nil)
	log := newLogger(NewHook(rec, logrus.WarnLevel), true)

	log.Info("not recorded")
	_, _, line, _ := runtime.Caller(0)
	log.Warn("low battery")
	log.WithField("cell", 3).Error("cell fault")

	require.Equal(t, []faultlog.Record{
		{File: "hook_test.go", Line: line + 1},
		{File: "hook_test.go", Line: line + 2},
	}, rec.Records())
}

func TestHook_WithoutReportCaller(t *testing.T) {
	rec := bridge.NewRecorder(nil)
	log := newLogger(NewHook(rec, logrus.DebugLevel), false)

	log.Error("no caller")

	require.Empty(t, rec.Records())
}

func TestNewHook_Levels(t *testing.T) {
	h := NewHook(bridge.NewRecorder(nil), logrus.ErrorLevel)
	require.Equal(t, []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}, h.Levels())
}
