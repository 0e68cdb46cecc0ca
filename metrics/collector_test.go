package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/emlog/bridge"
	"github.com/philipp01105/emlog/core"
	"github.com/philipp01105/emlog/faultlog"
	"github.com/philipp01105/emlog/handler"
)

func TestCollector_Values(t *testing.T) {
	acc := faultlog.New(core.NewBuffer(12))
	acc.Append("a.c", 1)
	acc.Append("b.c", 2)
	acc.Append("c.c", 3)
	acc.Append("this_name_is_far_too_long.c", 4)

	var out bytes.Buffer
	sink := handler.NewWriterSink(handler.WriterConfig{Writer: &out})
	sink.Print([]byte("x"))

	c := NewCollector("emlog", acc, sink)

	want := `
# HELP emlog_faultlog_appended_total Records appended.
# TYPE emlog_faultlog_appended_total counter
emlog_faultlog_appended_total 3
# HELP emlog_faultlog_capacity_bytes Size of the fault log buffer.
# TYPE emlog_faultlog_capacity_bytes gauge
emlog_faultlog_capacity_bytes 12
# HELP emlog_faultlog_evicted_total Oldest records evicted to make room.
# TYPE emlog_faultlog_evicted_total counter
emlog_faultlog_evicted_total 1
# HELP emlog_faultlog_occupied_bytes Bytes held by stored records.
# TYPE emlog_faultlog_occupied_bytes gauge
emlog_faultlog_occupied_bytes 10
# HELP emlog_faultlog_records Number of stored records.
# TYPE emlog_faultlog_records gauge
emlog_faultlog_records 2
# HELP emlog_faultlog_rejected_total Records larger than the buffer.
# TYPE emlog_faultlog_rejected_total counter
emlog_faultlog_rejected_total 1
# HELP emlog_faultlog_resets_total Buffers wiped after corruption was detected.
# TYPE emlog_faultlog_resets_total counter
emlog_faultlog_resets_total 0
# HELP emlog_sink_failed_total Lines the sink failed to write.
# TYPE emlog_sink_failed_total counter
emlog_sink_failed_total 0
# HELP emlog_sink_processed_total Lines written by the sink.
# TYPE emlog_sink_processed_total counter
emlog_sink_processed_total 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(want)))
}

func TestCollector_NilSources(t *testing.T) {
	require.Equal(t, 0, testutil.CollectAndCount(NewCollector("emlog", nil, nil)))
	require.Equal(t, 7, testutil.CollectAndCount(NewCollector("emlog", faultlog.New(nil), nil)))
}

func TestCollector_Registers(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	rec := bridge.NewRecorder(nil)
	rec.Record("a.go", 1)

	require.NoError(t, reg.Register(NewCollector("dev", rec, nil)))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 7)
}
