package pager

import "github.com/prometheus/client_golang/prometheus"

var (
	instancesRegistered = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pagerd",
			Subsystem: "paging",
			Name:      "instances",
			Help:      "Registered pagination instances",
		},
	)

	slicesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagerd",
			Subsystem: "paging",
			Name:      "slices_total",
			Help:      "Total number of slice operations",
		},
		[]string{"mode"},
	)

	pageChangesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pagerd",
			Subsystem: "paging",
			Name:      "page_changes_total",
			Help:      "Total number of accepted page changes",
		},
	)

	navigationRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pagerd",
			Subsystem: "paging",
			Name:      "navigation_rejected_total",
			Help:      "Navigation requests ignored because the page number was invalid",
		},
	)
)

func init() {
	prometheus.MustRegister(instancesRegistered, slicesTotal, pageChangesTotal, navigationRejectedTotal)
}

func sliceMode(async bool) string {
	if async {
		return "async"
	}
	return "sync"
}
