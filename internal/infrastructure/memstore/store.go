// Package memstore es un adaptador en memoria de los puertos de persistencia, pensado
// para tests. Las escrituras de RunOrder se acumulan en un buffer y solo se aplican al
// hacer commit, igual que una transacción real; los ids se consumen aunque haya rollback,
// como las secuencias de PostgreSQL.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/restaurante-rb-api/internal/application/ordering"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

var (
	_ ordering.TxRunner               = (*Store)(nil)
	_ repository.OrderQueryRepository = (*Store)(nil)
)

// Errores que simulan los de PostgreSQL.
var (
	ErrForeignKey      = errors.New("memstore: violación de llave foránea")
	ErrNumericOverflow = errors.New("memstore: valor fuera de rango para la columna")
)

// Faults fallos inyectables para ejercitar el rollback.
type Faults struct {
	Payment error
	Order   error
	Commit  error
	Begin   error
	// LineItem se consulta antes de cada línea; si devuelve error, la línea falla.
	LineItem func(index int, item entity.LineItem) error
	// LineItemDelay espera antes de cada línea respetando ctx (para probar timeouts).
	LineItemDelay time.Duration
}

// Stats conteo de transacciones.
type Stats struct {
	Begins, Commits, Rollbacks int
}

// Store datos confirmados más los fallos configurados.
type Store struct {
	mu sync.Mutex

	users         map[int64]entity.User
	products      map[int64]entity.Product
	establishment map[int64]entity.Establishment
	payments      map[int64]entity.Payment
	orders        map[int64]entity.Order
	items         []entity.LineItem

	seq    map[string]int64
	Faults Faults
	stats  Stats
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		users:         map[int64]entity.User{},
		products:      map[int64]entity.Product{},
		establishment: map[int64]entity.Establishment{},
		payments:      map[int64]entity.Payment{},
		orders:        map[int64]entity.Order{},
		seq:           map[string]int64{},
	}
}

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// RunOrder implementa ordering.TxRunner. Cada transacción escribe en su propio buffer y
// solo toma el lock para leer datos confirmados, asignar ids y aplicar el commit, así que
// varias transacciones pueden estar abiertas a la vez.
func (s *Store) RunOrder(ctx context.Context, fn func(repository.PaymentRepository, repository.OrderRepository) error) error {
	if s.Faults.Begin != nil {
		return fmt.Errorf("begin transaction: %w", s.Faults.Begin)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	s.mu.Lock()
	s.stats.Begins++
	s.mu.Unlock()

	tx := &txn{store: s, payments: map[int64]entity.Payment{}, orders: map[int64]entity.Order{}}
	if err := fn(txPayments{tx}, txOrders{tx}); err != nil {
		s.rollback()
		return err
	}
	if s.Faults.Commit != nil {
		s.rollback()
		return fmt.Errorf("commit transaction: %w", s.Faults.Commit)
	}
	if err := ctx.Err(); err != nil {
		s.rollback()
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range tx.payments {
		s.payments[id] = p
	}
	for id, o := range tx.orders {
		s.orders[id] = o
	}
	s.items = append(s.items, tx.items...)
	s.stats.Commits++
	return nil
}

func (s *Store) rollback() {
	s.mu.Lock()
	s.stats.Rollbacks++
	s.mu.Unlock()
}

// txn buffer de una transacción; lo usa una sola goroutine.
type txn struct {
	store    *Store
	payments map[int64]entity.Payment
	orders   map[int64]entity.Order
	items    []entity.LineItem
}

type txPayments struct{ tx *txn }

// Create aplica los límites de pagos.cantidad_pago NUMERIC(12,2): desborde es error y
// los decimales extra se redondean, como hace PostgreSQL.
func (p txPayments) Create(ctx context.Context, pay *entity.Payment) error {
	s := p.tx.store
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	if s.Faults.Payment != nil {
		return fmt.Errorf("insert pago: %w", s.Faults.Payment)
	}
	amount := pay.Amount.Round(entity.PaymentAmountScale)
	if amount.Abs().GreaterThanOrEqual(entity.PaymentAmountLimit) {
		return fmt.Errorf("insert pago: cantidad_pago %s: %w", pay.Amount, ErrNumericOverflow)
	}

	s.mu.Lock()
	pay.ID = s.next("pagos")
	s.mu.Unlock()

	stored := *pay
	stored.Amount = amount
	p.tx.payments[pay.ID] = stored
	return nil
}

type txOrders struct{ tx *txn }

func (o txOrders) Create(ctx context.Context, order *entity.Order) error {
	s := o.tx.store
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert orden: %w", err)
	}
	if s.Faults.Order != nil {
		return fmt.Errorf("insert orden: %w", s.Faults.Order)
	}
	if order.Code < math.MinInt32 || order.Code > math.MaxInt32 {
		return fmt.Errorf("insert orden: codigo_orden %d: %w", order.Code, ErrNumericOverflow)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[order.UserID]; !ok {
		return fmt.Errorf("insert orden: usuario %d: %w", order.UserID, ErrForeignKey)
	}
	if _, ok := o.tx.payments[order.PaymentID]; !ok {
		if _, ok := s.payments[order.PaymentID]; !ok {
			return fmt.Errorf("insert orden: pago %d: %w", order.PaymentID, ErrForeignKey)
		}
	}
	order.ID = s.next("orden")
	o.tx.orders[order.ID] = *order
	return nil
}

func (o txOrders) AddLineItem(ctx context.Context, item *entity.LineItem) error {
	s := o.tx.store
	if d := s.Faults.LineItemDelay; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("insert orden_producto: %w", err)
	}
	if f := s.Faults.LineItem; f != nil {
		if err := f(len(o.tx.items), *item); err != nil {
			return fmt.Errorf("insert orden_producto: %w", err)
		}
	}
	if _, ok := o.tx.orders[item.OrderID]; !ok {
		return fmt.Errorf("insert orden_producto: orden %d: %w", item.OrderID, ErrForeignKey)
	}
	if item.Quantity > entity.LineItemQuantityMax {
		return fmt.Errorf("insert orden_producto: cantidad %d: %w", item.Quantity, ErrNumericOverflow)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("insert orden_producto: cantidad %d viola CHECK", item.Quantity)
	}

	s.mu.Lock()
	_, ok := s.products[item.ProductID]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("insert orden_producto: producto %d: %w", item.ProductID, ErrForeignKey)
	}
	o.tx.items = append(o.tx.items, *item)
	return nil
}

// ── Inspección para tests ───────────────────────────────────────────────────

// Stats devuelve los contadores de transacciones.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Counts filas confirmadas en pagos, orden y orden_producto.
func (s *Store) Counts() (payments, orders, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments), len(s.orders), len(s.items)
}

// Payment pago confirmado por id.
func (s *Store) Payment(id int64) (entity.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	return p, ok
}

// Order orden confirmada por id.
func (s *Store) Order(id int64) (entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}

// LineItems líneas confirmadas de una orden, en orden de inserción.
func (s *Store) LineItems(orderID int64) []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.LineItem
	for _, it := range s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out
}

// DeleteLineItems borra las líneas de una orden (simula datos inconsistentes).
func (s *Store) DeleteLineItems(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.OrderID != orderID {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

// ── Lecturas (repository.OrderQueryRepository) ──────────────────────────────

// ListAll implementa OrderQueryRepository.
func (s *Store) ListAll(ctx context.Context) ([]entity.OrderSummary, error) {
	return s.listSummaries(ctx, func(entity.Order) bool { return true })
}

// ListByUser implementa OrderQueryRepository.
func (s *Store) ListByUser(ctx context.Context, userID int64) ([]entity.OrderSummary, error) {
	return s.listSummaries(ctx, func(o entity.Order) bool { return o.UserID == userID })
}

func (s *Store) listSummaries(ctx context.Context, keep func(entity.Order) bool) ([]entity.OrderSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.OrderSummary, 0)
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, s.summary(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Time != b.Time {
			return a.Time > b.Time
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (s *Store) summary(o entity.Order) entity.OrderSummary {
	sum := entity.OrderSummary{Order: o}
	if u, ok := s.users[o.UserID]; ok {
		sum.UserFirstName, sum.UserLastName, sum.UserEmail = u.FirstName, u.LastName, u.Email
	}
	if p, ok := s.payments[o.PaymentID]; ok {
		sum.PaymentMethod, sum.PaymentAmount = p.Method, p.Amount
	}
	return sum
}

// GetHeader implementa OrderQueryRepository.
func (s *Store) GetHeader(ctx context.Context, orderID int64) (*entity.OrderHeader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, nil
	}
	h := entity.OrderHeader{OrderSummary: s.summary(o)}
	h.UserPhone = s.users[o.UserID].Phone
	return &h, nil
}

// ListItems implementa OrderQueryRepository.
func (s *Store) ListItems(ctx context.Context, orderID int64) ([]entity.OrderItemView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.OrderItemView, 0)
	for _, it := range s.items {
		if it.OrderID != orderID {
			continue
		}
		p := s.products[it.ProductID]
		out = append(out, entity.OrderItemView{
			ProductID:   it.ProductID,
			Name:        p.Name,
			Price:       p.Price,
			Type:        p.Type,
			Description: p.Description,
			Image:       p.Image,
			Quantity:    it.Quantity,
		})
	}
	return out, nil
}

// errNotFoundIfMissing ayuda a los repos CRUD.
func errNotFoundIfMissing(ok bool) error {
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
