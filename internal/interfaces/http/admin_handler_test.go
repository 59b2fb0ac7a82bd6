package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SignupLoginSesionLogout(t *testing.T) {
	env := newTestEnv(t)
	signup := map[string]any{
		"Nombre":             "Camila",
		"Apellido":           "Rojas",
		"Documento":          "1098765432",
		"Telefono":           "3110000000",
		"Correo_electronico": "camila@rb.co",
		"Contrasena":         "secreto1",
		"Tipo_usuario":       entity.RoleAdmin,
	}

	status, raw, _ := env.do(t, http.MethodPost, "/signup", "", signup)
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[dto.AuthResponse](t, raw)
	assert.Equal(t, entity.RoleCliente, created.User.Role, "el registro público siempre crea clientes")
	assert.NotEmpty(t, created.Token)

	status, raw, _ = env.do(t, http.MethodPost, "/signup", "", signup)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "El email ya está registrado.", decode[dto.ErrorResponse](t, raw).Message)

	status, _, _ = env.do(t, http.MethodPost, "/login", "", map[string]any{"Correo_electronico": "camila@rb.co", "Contrasena": "mala"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = env.do(t, http.MethodPost, "/login", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw, _ = env.do(t, http.MethodPost, "/login", "", map[string]any{"Correo_electronico": "camila@rb.co", "Contrasena": "secreto1"})
	require.Equal(t, http.StatusOK, status)
	login := decode[dto.AuthResponse](t, raw)

	status, raw, _ = env.do(t, http.MethodGet, "/check-session", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	session := decode[dto.SessionResponse](t, raw)
	assert.True(t, session.Authenticated)
	assert.Equal(t, "camila@rb.co", session.User.Email)

	status, raw, _ = env.do(t, http.MethodGet, "/check-session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, decode[dto.SessionResponse](t, raw).Authenticated)

	status, _, _ = env.do(t, http.MethodPost, "/logout", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)

	status, raw, _ := env.do(t, http.MethodGet, "/profile", env.clientToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(raw), "user3@rb.co")

	status, _, _ = env.do(t, http.MethodGet, "/profile", tokenFor(t, 404, entity.RoleCliente), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_RutasRequierenAdministrador(t *testing.T) {
	env := newTestEnv(t)
	routes := []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodPost, "/products"},
		{http.MethodPut, "/admin/users"},
		{http.MethodDelete, "/admin/users/2"},
		{http.MethodPut, "/admin/products"},
		{http.MethodDelete, "/admin/products/1"},
		{http.MethodGet, "/admin/establecimientos"},
		{http.MethodPost, "/admin/establecimientos"},
		{http.MethodPut, "/admin/establecimientos"},
		{http.MethodDelete, "/admin/establecimientos/1"},
	}
	for _, r := range routes {
		status, _, _ := env.do(t, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, "%s %s sin token", r.method, r.path)

		status, _, _ = env.do(t, r.method, r.path, env.clientToken(t), nil)
		assert.Equal(t, http.StatusForbidden, status, "%s %s como cliente", r.method, r.path)
	}
}

func TestAdmin_Productos(t *testing.T) {
	env := newTestEnv(t)

	status, raw, _ := env.do(t, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.ProductListResponse](t, raw).Products, menuSeed)

	status, raw, _ = env.do(t, http.MethodPost, "/products", env.adminToken(t), map[string]any{
		"Nombre_producto": "Mazamorra", "Precio_producto": 6000, "Tipo_producto": "Postre",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, _, _ = env.do(t, http.MethodPost, "/products", env.adminToken(t), map[string]any{"Nombre_producto": "Sin precio"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, _ = env.do(t, http.MethodPut, "/admin/products", env.adminToken(t), map[string]any{
		"Id_producto": 2, "Nombre_producto": "Plato 2 grande", "Precio_producto": 2500,
	})
	assert.Equal(t, http.StatusOK, status)

	status, _, _ = env.do(t, http.MethodPut, "/admin/products", env.adminToken(t), map[string]any{
		"Id_producto": 777, "Nombre_producto": "X", "Precio_producto": 1,
	})
	assert.Equal(t, http.StatusNotFound, status)

	// producto 5 referenciado por una orden
	status, _, _ = env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status)
	status, _, _ = env.do(t, http.MethodDelete, "/admin/products/5", env.adminToken(t), nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _, _ = env.do(t, http.MethodDelete, "/admin/products/1", env.adminToken(t), nil)
	assert.Equal(t, http.StatusOK, status)

	status, _, _ = env.do(t, http.MethodDelete, "/admin/products/xyz", env.adminToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdmin_Usuarios(t *testing.T) {
	env := newTestEnv(t)

	status, raw, _ := env.do(t, http.MethodGet, "/users", env.adminToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[dto.UserListResponse](t, raw).Users, usersSeed)

	status, raw, _ = env.do(t, http.MethodPut, "/admin/users", env.adminToken(t), map[string]any{
		"Id_usuario": 2, "Nombre": "Pedro", "Correo_electronico": "pedro@rb.co", "Tipo_usuario": entity.RoleAdmin,
	})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Contains(t, string(raw), entity.RoleAdmin)

	status, _, _ = env.do(t, http.MethodPut, "/admin/users", env.adminToken(t), map[string]any{
		"Id_usuario": 2, "Nombre": "Pedro", "Correo_electronico": "user4@rb.co",
	})
	assert.Equal(t, http.StatusBadRequest, status, "correo de otro usuario")

	status, _, _ = env.do(t, http.MethodPost, "/orders", env.clientToken(t), scenarioABody())
	require.Equal(t, http.StatusCreated, status)
	status, raw, _ = env.do(t, http.MethodDelete, fmt.Sprintf("/admin/users/%d", clientID), env.adminToken(t), nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, raw).Code)

	status, _, _ = env.do(t, http.MethodDelete, "/admin/users/6", env.adminToken(t), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _, _ = env.do(t, http.MethodDelete, "/admin/users/6", env.adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAdmin_Establecimientos(t *testing.T) {
	env := newTestEnv(t)

	status, _, _ := env.do(t, http.MethodPost, "/admin/establecimientos", env.adminToken(t), map[string]any{"Ciudad": "Cali"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, raw, _ := env.do(t, http.MethodPost, "/admin/establecimientos", env.adminToken(t), map[string]any{
		"Nombre_sede": "RB Granada", "Ciudad": "Cali", "Tipo_de_mesa": "Terraza",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, _, _ = env.do(t, http.MethodPut, "/admin/establecimientos", env.adminToken(t), map[string]any{
		"Id_Establecimiento": 1, "Nombre_sede": "RB Granada", "Mesero": "Andrés",
	})
	assert.Equal(t, http.StatusOK, status)

	status, raw, _ = env.do(t, http.MethodGet, "/admin/establecimientos", env.adminToken(t), nil)
	require.Equal(t, http.StatusOK, status)
	list := decode[dto.EstablishmentListResponse](t, raw)
	require.Len(t, list.Establishments, 1)
	assert.Equal(t, "Andrés", list.Establishments[0].Waiter)

	status, _, _ = env.do(t, http.MethodDelete, "/admin/establecimientos/1", env.adminToken(t), nil)
	assert.Equal(t, http.StatusOK, status)
	status, _, _ = env.do(t, http.MethodDelete, "/admin/establecimientos/1", env.adminToken(t), nil)
	assert.Equal(t, http.StatusNotFound, status)
}
