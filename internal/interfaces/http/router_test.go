package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/application/auth"
	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
	"github.com/jhoicas/restaurante-rb-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/memstore"
	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/restaurante-rb-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno completo sobre el store en memoria
// ──────────────────────────────────────────────────────────────────────────────

// Usuarios sembrados: 1 es administrador; 2..7 son clientes. Productos 1..9.
const (
	adminID   = int64(1)
	clientID  = int64(3)
	otherID   = int64(7)
	usersSeed = 7
	menuSeed  = 9
)

type testEnv struct {
	app   *fiber.App
	store *memstore.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()

	for i := 1; i <= usersSeed; i++ {
		role := entity.RoleCliente
		if int64(i) == adminID {
			role = entity.RoleAdmin
		}
		u := &entity.User{
			FirstName: fmt.Sprintf("Usuario%d", i),
			LastName:  "RB",
			Phone:     fmt.Sprintf("30000000%02d", i),
			Email:     fmt.Sprintf("user%d@rb.co", i),
			Role:      role,
		}
		require.NoError(t, store.Users().Create(ctx, u))
	}
	for i := 1; i <= menuSeed; i++ {
		p := &entity.Product{
			Name:  fmt.Sprintf("Plato %d", i),
			Price: decimal.NewFromInt(int64(i) * 1000),
			Type:  "Plato fuerte",
		}
		require.NoError(t, store.Products().Create(ctx, p))
	}

	query := ordering.NewQueryService(store, nil)
	policy := ordering.OwnerOrAdmin{}
	deps := apphttp.RouterDeps{
		AuthUC:          auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:          usecase.NewUserUseCase(store.Users()),
		ProductUC:       usecase.NewProductUseCase(store.Products()),
		EstablishmentUC: usecase.NewEstablishmentUseCase(store.Establishments()),
		PlaceOrder:      ordering.NewPlaceOrderUseCase(store, nil, nil, nil, ordering.PlaceOrderConfig{Timeout: time.Second}),
		OrderQuery:      query,
		OrderReceipt:    ordering.NewReceiptUseCase(query, policy, pdf.NewReceiptGenerator(), "Restaurante RB"),
		OrderPolicy:     policy,
		JWTSecret:       testJWTSecret,
	}

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, deps)
	return &testEnv{app: app, store: store}
}

func (e *testEnv) adminToken(t *testing.T) string  { return tokenFor(t, adminID, entity.RoleAdmin) }
func (e *testEnv) clientToken(t *testing.T) string { return tokenFor(t, clientID, entity.RoleCliente) }
func (e *testEnv) otherToken(t *testing.T) string  { return tokenFor(t, otherID, entity.RoleCliente) }

// do lanza una petición con cuerpo JSON opcional y devuelve estado y cuerpo crudo.
func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) (int, []byte, http.Header) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw, resp.Header
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
