package main

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	temperature = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "smc",
			Name:      "temperature_degrees",
			Help:      "Temperature sensor reading in the configured unit.",
		},
		[]string{"key", "unit"},
	)
	fanCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "smc",
			Subsystem: "fan",
			Name:      "count",
			Help:      "Number of fans reported by the SMC.",
		},
	)
	numericValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "smc",
			Name:      "key_value",
			Help:      "Raw value of a configured numeric key, labeled with its data type.",
		},
		[]string{"key", "type"},
	)
	fanRPM = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "smc",
			Subsystem: "fan",
			Name:      "rpm",
			Help:      "Current fan speed in revolutions per minute.",
		},
		[]string{"fan"},
	)
	scrapeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smc",
			Subsystem: "scrape",
			Name:      "errors_total",
			Help:      "SMC reads that failed, by key.",
		},
		[]string{"key"},
	)
	scrapeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "smc",
			Subsystem: "scrape",
			Name:      "duration_seconds",
			Help:      "Duration of one full SMC poll.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func registerMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(temperature, numericValue, fanCount, fanRPM, scrapeErrors, scrapeDuration)
	})
}

func fanLabel(fan int) string {
	return fmt.Sprintf("%d", fan)
}

func fanRPMKey(fan int) string {
	return fmt.Sprintf("F%dAc", fan)
}
