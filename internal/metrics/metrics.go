package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "furniture_http_requests_total",
		Help: "Количество HTTP запросов по методу, маршруту и статусу.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "furniture_http_request_duration_seconds",
		Help:    "Длительность обработки HTTP запросов.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "furniture_calculations_total",
		Help: "Количество расчетов по виду и исходу.",
	}, []string{"kind", "outcome"})
)

const (
	KindRawMaterial       = "raw_material"
	KindManufacturingTime = "manufacturing_time"

	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)
