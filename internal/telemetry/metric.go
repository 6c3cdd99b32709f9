package telemetry

import (
	"fieldforce/config"
	"fieldforce/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal    *prometheus.CounterVec
	HttpRequestDuration  *prometheus.HistogramVec
	SubmissionsTotal     *prometheus.CounterVec
	SubmissionsFailTotal *prometheus.CounterVec
	FormLimitTotal       *prometheus.CounterVec
	LiveSubscribersGauge *prometheus.GaugeVec
	config               *config.Configuration
}

// NewMetric 建立所有指標
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		SubmissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricSubmissionsTotal),
				Help: "Accepted form submissions",
			},
			labelNames(core.MetricLabelForm),
		),
		SubmissionsFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricSubmissionsFailTotal),
				Help: "Rejected form submissions",
			},
			labelNames(core.MetricLabelForm, core.MetricLabelReason),
		),
		FormLimitTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricFormLimitTotal),
				Help: "Public form submissions rejected by the rate limiter",
			},
			labelNames(core.MetricLabelForm),
		),
		LiveSubscribersGauge: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: config.App.Name + "_" + string(core.MetricLiveSubscribersGauge),
				Help: "Open live-list subscriptions",
			},
			labelNames(core.MetricLabelEndpoint),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}

