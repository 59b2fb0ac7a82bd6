package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-rb-api/internal/application/dto"
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-rb-api/pkg/sanitize"
)

// ProductUseCase casos de uso CRUD para el menú.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List el menú completo (público).
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		products = append(products, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Success: true, Products: products}, nil
}

// Create agrega un producto. Requiere nombre, precio > 0 y tipo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product := toProduct(in)
	verr := validateProduct(product)
	if product.Type == "" {
		verr.Add("Tipo_producto", "es requerido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	product.ID = 0
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update reescribe un producto existente. Requiere Id_producto, nombre y precio.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product := toProduct(in)
	verr := validateProduct(product)
	if product.ID <= 0 {
		verr.Add("Id_producto", "es requerido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. ErrConflict si alguna orden lo incluye.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

func validateProduct(p *entity.Product) *domain.ValidationError {
	verr := &domain.ValidationError{}
	if p.Name == "" {
		verr.Add("Nombre_producto", "es requerido")
	}
	if !p.Price.IsPositive() {
		verr.Add("Precio_producto", "debe ser mayor que cero")
	}
	return verr
}

func toProduct(in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		ID:          in.ID,
		Name:        sanitize.Text(in.Name),
		Price:       in.Price,
		Type:        sanitize.Text(in.Type),
		Description: sanitize.Text(in.Description),
		Image:       sanitize.Text(in.Image),
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Type:        p.Type,
		Description: p.Description,
		Image:       p.Image,
	}
}
