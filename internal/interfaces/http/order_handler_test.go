package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

func scenarioABody() map[string]any {
	return map[string]any{
		"productos": []map[string]any{
			{"Id_producto": 5, "cantidad": 2},
			{"Id_producto": 9, "cantidad": 1},
		},
		"tipo_pago": "Efectivo",
		"total":     46000,
	}
}

func assertNoRows(t *testing.T, env *testEnv) {
	t.Helper()
	payments, orders, items := env.store.Counts()
	assert.Zero(t, payments+orders+items, "no debe quedar ninguna fila escrita")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /orders
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_EscenarioA_CreaYConsulta(t *testing.T) {
	env := newTestEnv(t)

	status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status, string(raw))

	created := decode[dto.CreateOrderResponse](t, raw)
	assert.True(t, created.Success)
	assert.Equal(t, "Orden creada exitosamente.", created.Message)
	assert.Equal(t, fmt.Sprintf("ORD-%06d", created.OrderID), created.OrderCode)

	status, raw, _ = env.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", created.OrderID), env.clientToken(t), nil)
	require.Equal(t, http.StatusOK, status, string(raw))

	detail := decode[dto.OrderDetailResponse](t, raw)
	assert.Equal(t, clientID, detail.Order.UserID)
	assert.Equal(t, "Efectivo", detail.Order.PaymentMethod)
	assert.Equal(t, "46000", detail.Order.PaymentAmount.String())
	require.Len(t, detail.Items, 2)
	assert.Equal(t, int64(5), detail.Items[0].ProductID)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	assert.Equal(t, int64(9), detail.Items[1].ProductID)
	assert.Equal(t, 1, detail.Items[1].Quantity)
}

func TestOrders_EscenarioB_SinProductos(t *testing.T) {
	env := newTestEnv(t)
	body := scenarioABody()
	body["productos"] = []map[string]any{}

	status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), body)
	assert.Equal(t, http.StatusBadRequest, status)

	out := decode[dto.ErrorResponse](t, raw)
	assert.Equal(t, "Datos incompletos.", out.Message)
	assert.Equal(t, "VALIDATION", out.Code)
	require.NotEmpty(t, out.Errors)
	assert.Equal(t, "productos", out.Errors[0].Field)
	assertNoRows(t, env)
}

func TestOrders_EscenarioC_SinSesion(t *testing.T) {
	env := newTestEnv(t)

	status, _, _ := env.do(t, http.MethodPost, "/orders", "", scenarioABody())
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = env.do(t, http.MethodPost, "/orders", "Bearer token.invalido", scenarioABody())
	assert.Equal(t, http.StatusUnauthorized, status)
	assertNoRows(t, env)
}

func TestOrders_EscenarioD_Autorizacion(t *testing.T) {
	env := newTestEnv(t)
	status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status)
	id := decode[dto.CreateOrderResponse](t, raw).OrderID
	path := fmt.Sprintf("/orders/%d", id)

	status, raw, _ = env.do(t, http.MethodGet, path, env.otherToken(t), nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "No tienes permiso para ver esta orden.", decode[dto.ErrorResponse](t, raw).Message)

	status, raw, _ = env.do(t, http.MethodGet, path, env.adminToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	detail := decode[dto.OrderDetailResponse](t, raw)
	assert.Len(t, detail.Items, 2)
	assert.Equal(t, "3000000003", detail.Order.Phone)
}

func TestOrders_ValidacionAcumulaViolaciones(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]any{
		"productos": []map[string]any{{"Id_producto": 0, "cantidad": 0}},
		"tipo_pago": "   ",
		"total":     -1,
	}

	status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), body)
	require.Equal(t, http.StatusBadRequest, status)

	fields := make([]string, 0)
	for _, v := range decode[dto.ErrorResponse](t, raw).Errors {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"productos[0].Id_producto", "productos[0].cantidad", "tipo_pago", "total"}, fields)
	assertNoRows(t, env)
}

func TestOrders_CuerpoInvalido(t *testing.T) {
	env := newTestEnv(t)
	status, _, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), "no es un objeto")
	assert.Equal(t, http.StatusBadRequest, status)
	assertNoRows(t, env)
}

func TestOrders_FalloDeEscrituraResponde500SinDetalles(t *testing.T) {
	env := newTestEnv(t)
	env.store.Faults.LineItem = func(index int, _ entity.LineItem) error {
		if index == 1 {
			return errors.New("disco lleno en el servidor db-01")
		}
		return nil
	}

	status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	assert.Equal(t, http.StatusInternalServerError, status)

	out := decode[dto.ErrorResponse](t, raw)
	assert.False(t, out.Success)
	assert.Equal(t, "Error al crear la orden.", out.Message)
	assert.NotContains(t, string(raw), "db-01", "la causa no se expone al cliente")
	assertNoRows(t, env)
}

func TestOrders_ProductoInexistenteRevierte(t *testing.T) {
	env := newTestEnv(t)
	body := scenarioABody()
	body["productos"] = []map[string]any{{"Id_producto": 5, "cantidad": 1}, {"Id_producto": 999, "cantidad": 1}}

	status, _, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), body)
	assert.Equal(t, http.StatusInternalServerError, status)
	assertNoRows(t, env)
}

func TestOrders_CausaDeDominioEnEscrituraSigueSiendo500(t *testing.T) {
	causes := []error{domain.ErrNotFound, domain.ErrConflict, domain.ErrForbidden}
	for _, cause := range causes {
		t.Run(cause.Error(), func(t *testing.T) {
			env := newTestEnv(t)
			env.store.Faults.LineItem = func(int, entity.LineItem) error {
				return fmt.Errorf("trigger orden_producto: %w", cause)
			}

			status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
			assert.Equal(t, http.StatusInternalServerError, status)

			out := decode[dto.ErrorResponse](t, raw)
			assert.Equal(t, "INTERNAL", out.Code)
			assert.Equal(t, "Error al crear la orden.", out.Message)
			assertNoRows(t, env)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestOrders_ListAll_SoloAdministrador(t *testing.T) {
	env := newTestEnv(t)
	for range 2 {
		status, _, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
		require.Equal(t, http.StatusCreated, status)
	}

	status, _, _ := env.do(t, http.MethodGet, "/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = env.do(t, http.MethodGet, "/orders", env.clientToken(t), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw, _ := env.do(t, http.MethodGet, "/orders", env.adminToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.OrderListResponse](t, raw)
	assert.True(t, list.Success)
	require.Len(t, list.Orders, 2)
	assert.Greater(t, list.Orders[0].ID, list.Orders[1].ID, "más recientes primero")
	assert.Equal(t, "user3@rb.co", list.Orders[0].Email)
}

func TestOrders_ListMine(t *testing.T) {
	env := newTestEnv(t)
	status, _, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status)
	status, _, _ = env.do(t, http.MethodPost, "/orders", env.otherToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status)

	status, raw, _ := env.do(t, http.MethodGet, "/orders/user", env.clientToken(t), nil)
	require.Equal(t, http.StatusOK, status, "/orders/user no debe confundirse con /orders/:id")
	list := decode[dto.OrderListResponse](t, raw)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, clientID, list.Orders[0].UserID)

	status, _, _ = env.do(t, http.MethodGet, "/orders/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestOrders_GetByID_IdInvalidoYNoExiste(t *testing.T) {
	env := newTestEnv(t)

	status, _, _ := env.do(t, http.MethodGet, "/orders/abc", env.clientToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw, _ := env.do(t, http.MethodGet, "/orders/12345", env.clientToken(t), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Orden no encontrada.", decode[dto.ErrorResponse](t, raw).Message)
}

func TestOrders_Receipt(t *testing.T) {
	env := newTestEnv(t)
	status, raw, _ := env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status)
	id := decode[dto.CreateOrderResponse](t, raw).OrderID
	path := fmt.Sprintf("/orders/%d/receipt", id)

	status, raw, header := env.do(t, http.MethodGet, path, env.clientToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/pdf", header.Get("Content-Type"))
	assert.Contains(t, header.Get("Content-Disposition"), entity.PublicOrderCode(id))
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))

	status, _, _ = env.do(t, http.MethodGet, path, env.otherToken(t), nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _, _ = env.do(t, http.MethodGet, "/orders/999/receipt", env.adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRequestID_SePropaga(t *testing.T) {
	env := newTestEnv(t)
	_, _, header := env.do(t, http.MethodGet, "/products", "", nil)
	assert.NotEmpty(t, header.Get("X-Request-ID"))
}
