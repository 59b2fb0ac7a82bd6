package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/application/auth"
	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/memstore"
	"github.com/jhoicas/restaurante-rb-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase() (*auth.AuthUseCase, *memstore.Store) {
	store := memstore.New()
	return auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "restaurante-rb-test"}), store
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		FirstName: " Ana ",
		LastName:  "Pérez",
		Document:  "1020304050",
		Phone:     "3001234567",
		Email:     "Ana@RB.co",
		Password:  "secreto1",
	}
}

func TestSignup_CreaClienteConToken(t *testing.T) {
	uc, store := newUseCase()

	out, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	assert.Equal(t, auth.MsgSignup, out.Message)
	assert.Equal(t, "Ana", out.User.FirstName)
	assert.Equal(t, "ana@rb.co", out.User.Email)
	assert.Equal(t, entity.RoleCliente, out.User.Role)

	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleCliente, role)

	saved, err := store.Users().GetByID(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", saved.PasswordHash, "la contraseña se guarda hasheada")
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	again := signupRequest()
	again.Email = "ana@rb.co"
	_, err = uc.Signup(context.Background(), again)
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))
}

func TestSignup_Validacion(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.Signup(context.Background(), dto.SignupRequest{Email: "no-es-email", Password: "123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]bool{}
	for _, v := range verr.Violations {
		fields[v.Field] = true
	}
	for _, f := range []string{"Nombre", "Apellido", "Documento", "Telefono", "Correo_electronico", "Contrasena"} {
		assert.True(t, fields[f], "falta violación para %s", f)
	}

	users, err := store.Users().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLogin(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	_, err := uc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@rb.co", Password: "secreto1"})
		require.NoError(t, err)
		assert.Equal(t, auth.MsgLogin, out.Message)
		assert.NotEmpty(t, out.Token)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@rb.co", Password: "otra"})
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("correo inexistente", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@rb.co", Password: "secreto1"})
		assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	})

	t.Run("campos vacíos", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})
}

func TestSession(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	out, err := uc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	s, err := uc.Session(ctx, entity.Caller{UserID: out.User.ID, Role: entity.RoleCliente})
	require.NoError(t, err)
	assert.True(t, s.Authenticated)
	assert.Equal(t, out.User.ID, s.User.ID)

	_, err = uc.Session(ctx, entity.Caller{})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	require.NoError(t, store.Users().Delete(ctx, out.User.ID))
	_, err = uc.Session(ctx, entity.Caller{UserID: out.User.ID, Role: entity.RoleCliente})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
