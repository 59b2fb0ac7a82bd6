package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id_producto, nombre_producto, precio_producto, tipo_producto, descripcion, imagen`

// Create persiste un nuevo producto y asigna su id.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO producto (nombre_producto, precio_producto, tipo_producto, descripcion, imagen)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_producto`
	if err := r.db.QueryRow(ctx, query, p.Name, p.Price, p.Type, p.Description, p.Image).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM producto WHERE id_producto = $1`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Type, &p.Description, &p.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List el menú completo, agrupado por tipo.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM producto ORDER BY tipo_producto, nombre_producto`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Type, &p.Description, &p.Image); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos. ErrNotFound si el id no existe.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE producto
		SET nombre_producto = $2, precio_producto = $3, tipo_producto = $4, descripcion = $5, imagen = $6
		WHERE id_producto = $1`
	cmd, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Price, p.Type, p.Description, p.Image)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. Si aparece en alguna orden se devuelve ErrConflict.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM producto WHERE id_producto = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
