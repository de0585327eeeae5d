package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
	"github.com/Gloweldev/ArximiaBackend/pkg/textnorm"
)

// ProductUseCase catálogo de productos. Crear un producto inicializa además
// su registro de inventario en cero, con la definición de porciones sembrada
// desde el catálogo.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	invRepo     repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso de catálogo.
func NewProductUseCase(productRepo repository.ProductRepository, invRepo repository.InventoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, invRepo: invRepo}
}

// Create valida el tipo de producto, lo persiste e inicializa su inventario.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.ClubID == "" || in.Name == "" || in.Category == "" {
		return nil, domain.ErrMissingField
	}
	switch in.Type {
	case entity.ProductSealed, entity.ProductPrepared, entity.ProductBoth:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		ClubID:        in.ClubID,
		UserID:        userID,
		Type:          in.Type,
		Name:          in.Name,
		Brand:         in.Brand,
		Category:      in.Category,
		Flavor:        in.Flavor,
		ImageURL:      in.ImageURL,
		Portions:      in.Portions,
		PortionSize:   in.PortionSize,
		PortionPrice:  in.PortionPrice,
		SalePrice:     in.SalePrice,
		PurchasePrice: in.PurchasePrice,
		CreatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	rec := entity.NewInventoryRecord(uuid.New().String(), product.ID, product.ClubID, product.Portions, now)
	rec.Preparation.PortionPrice = product.PortionPrice
	rec.Preparation.PortionSize = product.PortionSize
	if err := uc.invRepo.Create(rec); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListByClub lista el catálogo del club (sin archivados por defecto).
func (uc *ProductUseCase) ListByClub(clubID string, includeArchived bool) ([]*dto.ProductResponse, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.productRepo.ListByClub(clubID, includeArchived)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Search busca por prefijo de nombre, sin acentos ni mayúsculas, excluyendo
// archivados. Máximo 10 resultados.
func (uc *ProductUseCase) Search(clubID, query string) ([]*dto.ProductResponse, error) {
	if clubID == "" || len(query) < 1 {
		return nil, domain.ErrMissingField
	}
	list, err := uc.productRepo.SearchByName(clubID, textnorm.Fold(query), 10)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update aplica ediciones administrativas sobre el producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Flavor != nil {
		p.Flavor = *in.Flavor
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.PortionSize != nil {
		p.PortionSize = *in.PortionSize
	}
	if in.PortionPrice != nil {
		p.PortionPrice = in.PortionPrice
	}
	if in.SalePrice != nil {
		p.SalePrice = in.SalePrice
	}
	if in.PurchasePrice != nil {
		p.PurchasePrice = *in.PurchasePrice
	}
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// SetArchived archiva o desarchiva (borrado suave): el producto sale de
// búsqueda y venta pero se conserva para reportes históricos.
func (uc *ProductUseCase) SetArchived(id string, archived bool) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.SetArchived(id, archived)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		ClubID:        p.ClubID,
		Type:          p.Type,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Flavor:        p.Flavor,
		ImageURL:      p.ImageURL,
		Portions:      p.Portions,
		PortionSize:   p.PortionSize,
		PortionPrice:  p.PortionPrice,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Archived:      p.Archived,
		CreatedAt:     p.CreatedAt,
	}
}
