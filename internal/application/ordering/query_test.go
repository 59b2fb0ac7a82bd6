package ordering_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

func TestQuery_GetDetails_CabeceraYLineas(t *testing.T) {
	f := newFixture(t, time.Second)
	out, err := f.uc.PlaceOrder(context.Background(), f.client, orderRequest(item(1, 2), item(2, 1)))
	require.NoError(t, err)

	q := ordering.NewQueryService(f.store, nil)
	detail, err := q.GetDetails(context.Background(), out.OrderID)
	require.NoError(t, err)

	assert.Equal(t, out.OrderID, detail.Header.ID)
	assert.Equal(t, "Ana", detail.Header.UserFirstName)
	assert.Equal(t, "3001234567", detail.Header.UserPhone)
	assert.Equal(t, entity.PaymentCash, detail.Header.PaymentMethod)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Bandeja paisa", detail.Items[0].Name)
	assert.Equal(t, 2, detail.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(9000).Equal(detail.Items[1].Price))

	resp := ordering.ToOrderDetailResponse(detail)
	assert.True(t, resp.Success)
	assert.Equal(t, "ORD-000001", resp.Order.PublicCode)
	assert.Equal(t, "3001234567", resp.Order.Phone)
	assert.Len(t, resp.Items, 2)
}

func TestQuery_GetDetails_NoExiste(t *testing.T) {
	f := newFixture(t, time.Second)
	q := ordering.NewQueryService(f.store, nil)

	_, err := q.GetDetails(context.Background(), 404)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQuery_GetDetails_SinLineasSeDevuelveIgual(t *testing.T) {
	f := newFixture(t, time.Second)
	out, err := f.uc.PlaceOrder(context.Background(), f.client, orderRequest(item(1, 1)))
	require.NoError(t, err)
	f.store.DeleteLineItems(out.OrderID)

	q := ordering.NewQueryService(f.store, nil)
	detail, err := q.GetDetails(context.Background(), out.OrderID)
	require.NoError(t, err)
	assert.Empty(t, detail.Items)
	assert.NotNil(t, ordering.ToOrderDetailResponse(detail).Items, "productos debe serializarse como [] y no null")
}

func TestQuery_ListAll_MasRecientesPrimero(t *testing.T) {
	f := newFixture(t, time.Second)
	ctx := context.Background()

	clock := fixedTime
	uc := ordering.NewPlaceOrderUseCase(f.store, nil, nil, nil, ordering.PlaceOrderConfig{
		Location: bogota,
		Clock:    func() time.Time { return clock },
	})
	first, err := uc.PlaceOrder(ctx, f.client, orderRequest(item(1, 1)))
	require.NoError(t, err)
	clock = fixedTime.Add(2 * time.Hour)
	second, err := uc.PlaceOrder(ctx, f.client, orderRequest(item(2, 1)))
	require.NoError(t, err)
	clock = fixedTime.Add(-24 * time.Hour)
	older, err := uc.PlaceOrder(ctx, f.client, orderRequest(item(3, 1)))
	require.NoError(t, err)

	q := ordering.NewQueryService(f.store, nil)
	list, err := q.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list.Orders, 3)
	assert.Equal(t, second.OrderID, list.Orders[0].ID)
	assert.Equal(t, first.OrderID, list.Orders[1].ID)
	assert.Equal(t, older.OrderID, list.Orders[2].ID)
	assert.Equal(t, "ana@rb.co", list.Orders[0].Email)
	assert.True(t, decimal.NewFromInt(45000).Equal(list.Orders[0].PaymentAmount))
}

func TestQuery_ListByUser_SoloLasDelUsuario(t *testing.T) {
	f := newFixture(t, time.Second)
	ctx := context.Background()

	other := &entity.User{FirstName: "Luis", Email: "luis@rb.co", Role: entity.RoleCliente}
	require.NoError(t, f.store.Users().Create(ctx, other))

	mine, err := f.uc.PlaceOrder(ctx, f.client, orderRequest(item(1, 1)))
	require.NoError(t, err)
	_, err = f.uc.PlaceOrder(ctx, entity.Caller{UserID: other.ID, Role: entity.RoleCliente}, orderRequest(item(2, 1)))
	require.NoError(t, err)

	q := ordering.NewQueryService(f.store, nil)
	list, err := q.ListByUser(ctx, f.client.UserID)
	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, mine.OrderID, list.Orders[0].ID)

	empty, err := q.ListByUser(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty.Orders)
	assert.Empty(t, empty.Orders)
}
