// Package metrics exposes fault accumulator and sink counters as
// Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/emlog/faultlog"
	"github.com/philipp01105/emlog/handler"
)

// AccumulatorSource is read on every scrape. *faultlog.Accumulator
// satisfies it for single-goroutine use; *bridge.Recorder adds locking.
type AccumulatorSource interface {
	Capacity() int
	Occupied() int
	Len() int
	Stats() faultlog.Stats
}

// Collector implements prometheus.Collector
type Collector struct {
	acc  AccumulatorSource
	sink handler.StatsSource

	capacity  *prometheus.Desc
	occupied  *prometheus.Desc
	records   *prometheus.Desc
	appended  *prometheus.Desc
	evicted   *prometheus.Desc
	rejected  *prometheus.Desc
	resets    *prometheus.Desc
	processed *prometheus.Desc
	failed    *prometheus.Desc
}

// NewCollector creates a collector. Either source may be nil, in which
// case its metrics are not reported.
func NewCollector(namespace string, acc AccumulatorSource, sink handler.StatsSource) *Collector {
	desc := func(subsystem, name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, nil)
	}
	return &Collector{
		acc:       acc,
		sink:      sink,
		capacity:  desc("faultlog", "capacity_bytes", "Size of the fault log buffer."),
		occupied:  desc("faultlog", "occupied_bytes", "Bytes held by stored records."),
		records:   desc("faultlog", "records", "Number of stored records."),
		appended:  desc("faultlog", "appended_total", "Records appended."),
		evicted:   desc("faultlog", "evicted_total", "Oldest records evicted to make room."),
		rejected:  desc("faultlog", "rejected_total", "Records larger than the buffer."),
		resets:    desc("faultlog", "resets_total", "Buffers wiped after corruption was detected."),
		processed: desc("sink", "processed_total", "Lines written by the sink."),
		failed:    desc("sink", "failed_total", "Lines the sink failed to write."),
	}
}

// Describe sends the descriptors of the reported metrics
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	if c.acc != nil {
		ch <- c.capacity
		ch <- c.occupied
		ch <- c.records
		ch <- c.appended
		ch <- c.evicted
		ch <- c.rejected
		ch <- c.resets
	}
	if c.sink != nil {
		ch <- c.processed
		ch <- c.failed
	}
}

// Collect reads the sources and sends the current values
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.acc != nil {
		st := c.acc.Stats()
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.acc.Capacity()))
		ch <- prometheus.MustNewConstMetric(c.occupied, prometheus.GaugeValue, float64(c.acc.Occupied()))
		ch <- prometheus.MustNewConstMetric(c.records, prometheus.GaugeValue, float64(c.acc.Len()))
		ch <- prometheus.MustNewConstMetric(c.appended, prometheus.CounterValue, float64(st.Appended))
		ch <- prometheus.MustNewConstMetric(c.evicted, prometheus.CounterValue, float64(st.Evicted))
		ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(st.Rejected))
		ch <- prometheus.MustNewConstMetric(c.resets, prometheus.CounterValue, float64(st.Resets))
	}
	if c.sink != nil {
		st := c.sink.Stats()
		ch <- prometheus.MustNewConstMetric(c.processed, prometheus.CounterValue, float64(st.ProcessedTotal))
		ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(st.FailedTotal))
	}
}
