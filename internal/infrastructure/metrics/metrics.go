// Package metrics expone contadores e histogramas Prometheus del servicio en un
// registro propio, para que los tests puedan crear instancias independientes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
)

const namespace = "restaurante_rb"

var _ ordering.Metrics = (*Metrics)(nil)

var latencyBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

// Metrics agrupa las series del API y de la creación de órdenes.
type Metrics struct {
	registry *prometheus.Registry

	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	OrdersPlaced   prometheus.Counter
	OrderItems     prometheus.Counter
	OrderFailures  *prometheus.CounterVec
	OrderLatencyMS prometheus.Histogram
}

// New registra todas las series en un registro nuevo, junto con los colectores de Go y del proceso.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de peticiones HTTP por ruta y código de estado.",
		}, []string{"route", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "Latencia de las peticiones HTTP en milisegundos.",
			Buckets:   latencyBuckets,
		}, []string{"route"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Órdenes confirmadas.",
		}),
		OrderItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_items_total",
			Help:      "Líneas de orden confirmadas.",
		}),
		OrderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_failures_total",
			Help:      "Transacciones de orden revertidas, por paso que falló.",
		}, []string{"step"}),
		OrderLatencyMS: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_placement_duration_ms",
			Help:      "Duración de la transacción de orden en milisegundos.",
			Buckets:   latencyBuckets,
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests, m.LatencyMS,
		m.OrdersPlaced, m.OrderItems, m.OrderFailures, m.OrderLatencyMS,
	)
	return m
}

// OrderPlaced implementa ordering.Metrics.
func (m *Metrics) OrderPlaced(items int, elapsed time.Duration) {
	m.OrdersPlaced.Inc()
	m.OrderItems.Add(float64(items))
	m.OrderLatencyMS.Observe(float64(elapsed.Milliseconds()))
}

// OrderFailed implementa ordering.Metrics.
func (m *Metrics) OrderFailed(step string, elapsed time.Duration) {
	m.OrderFailures.WithLabelValues(step).Inc()
	m.OrderLatencyMS.Observe(float64(elapsed.Milliseconds()))
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry registro subyacente (útil en tests).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Middleware cuenta peticiones y latencia por ruta registrada, no por path crudo.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
		return err
	}
}
