package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/metrics"
)

func TestOrderCounters(t *testing.T) {
	m := metrics.New()

	m.OrderPlaced(3, 12*time.Millisecond)
	m.OrderPlaced(1, 8*time.Millisecond)
	m.OrderFailed("orden_producto", 4*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OrdersPlaced))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.OrderItems))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrderFailures.WithLabelValues("orden_producto")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.OrderFailures.WithLabelValues("pago")))
}

func TestMiddleware_EtiquetaPorRuta(t *testing.T) {
	m := metrics.New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/orders/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/orders/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/orders/:id", "404")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "restaurante_rb_http_requests_total"))
}
