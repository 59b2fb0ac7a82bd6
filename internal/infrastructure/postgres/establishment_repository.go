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

var _ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)

// EstablishmentRepo implementación del puerto EstablishmentRepository sobre PostgreSQL.
type EstablishmentRepo struct {
	db Querier
}

// NewEstablishmentRepository construye el adaptador de persistencia para sedes.
func NewEstablishmentRepository(db Querier) *EstablishmentRepo {
	return &EstablishmentRepo{db: db}
}

const establishmentColumns = `id_establecimiento, nombre_sede, ciudad, tipo_de_mesa, responsable, mesero`

// Create persiste una sede y asigna su id.
func (r *EstablishmentRepo) Create(ctx context.Context, e *entity.Establishment) error {
	query := `
		INSERT INTO establecimiento (nombre_sede, ciudad, tipo_de_mesa, responsable, mesero)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id_establecimiento`
	if err := r.db.QueryRow(ctx, query, e.Name, e.City, e.TableType, e.Manager, e.Waiter).Scan(&e.ID); err != nil {
		return fmt.Errorf("insert establecimiento: %w", err)
	}
	return nil
}

// GetByID obtiene una sede por id.
func (r *EstablishmentRepo) GetByID(ctx context.Context, id int64) (*entity.Establishment, error) {
	var e entity.Establishment
	err := r.db.QueryRow(ctx, `SELECT `+establishmentColumns+` FROM establecimiento WHERE id_establecimiento = $1`, id).
		Scan(&e.ID, &e.Name, &e.City, &e.TableType, &e.Manager, &e.Waiter)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get establecimiento: %w", err)
	}
	return &e, nil
}

// List todas las sedes.
func (r *EstablishmentRepo) List(ctx context.Context) ([]*entity.Establishment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+establishmentColumns+` FROM establecimiento ORDER BY ciudad, nombre_sede`)
	if err != nil {
		return nil, fmt.Errorf("list establecimientos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Establishment, 0)
	for rows.Next() {
		var e entity.Establishment
		if err := rows.Scan(&e.ID, &e.Name, &e.City, &e.TableType, &e.Manager, &e.Waiter); err != nil {
			return nil, fmt.Errorf("scan establecimiento: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update reescribe todos los campos. ErrNotFound si el id no existe.
func (r *EstablishmentRepo) Update(ctx context.Context, e *entity.Establishment) error {
	query := `
		UPDATE establecimiento
		SET nombre_sede = $2, ciudad = $3, tipo_de_mesa = $4, responsable = $5, mesero = $6
		WHERE id_establecimiento = $1`
	cmd, err := r.db.Exec(ctx, query, e.ID, e.Name, e.City, e.TableType, e.Manager, e.Waiter)
	if err != nil {
		return fmt.Errorf("update establecimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una sede.
func (r *EstablishmentRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM establecimiento WHERE id_establecimiento = $1`, id)
	if err != nil {
		return fmt.Errorf("delete establecimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
