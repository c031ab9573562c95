package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ScansTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codeblock_scans_total",
			Help: "Total number of messages scanned for malformed code blocks",
		},
	)
	InstructionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codeblock_instructions_total",
			Help: "Total number of instruction messages produced",
		},
		[]string{"category"}, // category: no_ticks, bad_ticks, bad_language, no_language
	)
	DetectorErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codeblock_detector_errors_total",
			Help: "Total number of code likeness detector failures",
		},
		[]string{"backend"},
	)
)

func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(addr, nil)
}
