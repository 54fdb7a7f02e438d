package store

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	dispatchesDesc = prometheus.NewDesc(
		prometheus.BuildFQName("reduxact", "store", "dispatches_total"),
		"Total actions dispatched to the store, by action type",
		[]string{"type"}, nil,
	)
	cancelledDesc = prometheus.NewDesc(
		prometheus.BuildFQName("reduxact", "store", "cancelled_total"),
		"Dispatches cancelled by a pre-dispatch hook, by action type",
		[]string{"type"}, nil,
	)
	durationDesc = prometheus.NewDesc(
		prometheus.BuildFQName("reduxact", "store", "dispatch_seconds_total"),
		"Total time spent dispatching, by action type",
		[]string{"type"}, nil,
	)
	averageDesc = prometheus.NewDesc(
		prometheus.BuildFQName("reduxact", "store", "dispatch_seconds_average"),
		"Average dispatch time, by action type",
		[]string{"type"}, nil,
	)
	overallAverageDesc = prometheus.NewDesc(
		prometheus.BuildFQName("reduxact", "store", "all_dispatch_seconds_average"),
		"Average dispatch time over all action types",
		nil, nil,
	)
	panicsDesc = prometheus.NewDesc(
		prometheus.BuildFQName("reduxact", "store", "panics_total"),
		"Reducer panics recovered by the store",
		nil, nil,
	)
)

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- dispatchesDesc
	ch <- cancelledDesc
	ch <- durationDesc
	ch <- averageDesc
	ch <- overallAverageDesc
	ch <- panicsDesc
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, am := range m.all() {
		t := am.Type
		ch <- prometheus.MustNewConstMetric(dispatchesDesc, prometheus.CounterValue, float64(am.DispatchCount), t)
		ch <- prometheus.MustNewConstMetric(cancelledDesc, prometheus.CounterValue, float64(am.CancelledCount), t)
		ch <- prometheus.MustNewConstMetric(durationDesc, prometheus.CounterValue, am.TotalDuration.Seconds(), t)
		ch <- prometheus.MustNewConstMetric(averageDesc, prometheus.GaugeValue, am.AverageActionDuration().Seconds(), t)
	}
	ch <- prometheus.MustNewConstMetric(overallAverageDesc, prometheus.GaugeValue, m.AverageDuration().Seconds())
	ch <- prometheus.MustNewConstMetric(panicsDesc, prometheus.CounterValue, float64(m.TotalPanics()))
}

var _ prometheus.Collector = (*Metrics)(nil)
