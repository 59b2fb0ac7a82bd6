package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-rb-api/pkg/sanitize"
)

// EstablishmentUseCase casos de uso CRUD para sedes.
type EstablishmentUseCase struct {
	repo repository.EstablishmentRepository
}

// NewEstablishmentUseCase construye el caso de uso.
func NewEstablishmentUseCase(repo repository.EstablishmentRepository) *EstablishmentUseCase {
	return &EstablishmentUseCase{repo: repo}
}

// Create crea una sede. Nombre_sede y Ciudad son requeridos.
func (uc *EstablishmentUseCase) Create(ctx context.Context, in dto.EstablishmentRequest) (*dto.EstablishmentResponse, error) {
	e := toEstablishment(in)
	e.ID = 0
	verr := &domain.ValidationError{}
	if e.Name == "" {
		verr.Add("Nombre_sede", "es requerido")
	}
	if e.City == "" {
		verr.Add("Ciudad", "es requerido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEstablishmentResponse(e), nil
}

// List todas las sedes.
func (uc *EstablishmentUseCase) List(ctx context.Context) (*dto.EstablishmentListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EstablishmentResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEstablishmentResponse(e))
	}
	return &dto.EstablishmentListResponse{Success: true, Establishments: items}, nil
}

// Update reescribe una sede. Id_Establecimiento y Nombre_sede son requeridos.
func (uc *EstablishmentUseCase) Update(ctx context.Context, in dto.EstablishmentRequest) (*dto.EstablishmentResponse, error) {
	e := toEstablishment(in)
	verr := &domain.ValidationError{}
	if e.ID <= 0 {
		verr.Add("Id_Establecimiento", "es requerido")
	}
	if e.Name == "" {
		verr.Add("Nombre_sede", "es requerido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEstablishmentResponse(e), nil
}

// Delete elimina una sede por ID.
func (uc *EstablishmentUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

func toEstablishment(in dto.EstablishmentRequest) *entity.Establishment {
	return &entity.Establishment{
		ID:        in.ID,
		Name:      sanitize.Text(in.Name),
		City:      sanitize.Text(in.City),
		TableType: sanitize.Text(in.TableType),
		Manager:   sanitize.Text(in.Manager),
		Waiter:    sanitize.Text(in.Waiter),
	}
}

func toEstablishmentResponse(e *entity.Establishment) *dto.EstablishmentResponse {
	if e == nil {
		return nil
	}
	return &dto.EstablishmentResponse{
		ID:        e.ID,
		Name:      e.Name,
		City:      e.City,
		TableType: e.TableType,
		Manager:   e.Manager,
		Waiter:    e.Waiter,
	}
}
