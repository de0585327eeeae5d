package inventory

import (
	"context"
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	domaininv "github.com/Gloweldev/ArximiaBackend/internal/domain/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// QueryUseCase lecturas de inventario: getOrCreate, listado por club con
// estado por eje, e historial de movimientos. No muta saldos (la creación
// perezosa de un registro en cero no es una mutación de saldo).
type QueryUseCase struct {
	invRepo     repository.InventoryRepository
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewQueryUseCase construye las consultas de inventario.
func NewQueryUseCase(
	invRepo repository.InventoryRepository,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *QueryUseCase {
	return &QueryUseCase{invRepo: invRepo, movRepo: movRepo, productRepo: productRepo, userRepo: userRepo}
}

// GetOrCreate devuelve el registro del par (producto, club); si no existe lo
// crea con saldos en cero. El segundo valor indica si fue recién creado, para
// que la creación perezosa quede auditable en vez de escondida en una lectura.
func (uc *QueryUseCase) GetOrCreate(ctx context.Context, productID, clubID string) (*entity.InventoryRecord, bool, error) {
	if productID == "" || clubID == "" {
		return nil, false, domain.ErrMissingField
	}
	rec, err := uc.invRepo.Get(productID, clubID)
	if err != nil {
		return nil, false, err
	}
	if rec != nil {
		return rec, false, nil
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, domain.ErrNotFound
	}
	rec = newRecordFromCatalog(product, clubID, time.Now())
	if err := uc.invRepo.Create(rec); err != nil {
		return nil, false, err
	}
	// Create usa ON CONFLICT DO NOTHING: si otro caller ganó la carrera,
	// la relectura devuelve su registro.
	existing, err := uc.invRepo.Get(productID, clubID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		created := existing.ID == rec.ID
		return existing, created, nil
	}
	return rec, true, nil
}

// StockItem es una fila del inventario de un club con su producto y el
// estado por eje frente al inventario ideal de la cuenta.
type StockItem struct {
	Record         *entity.InventoryRecord
	Product        *entity.Product
	SealedStatus   domaininv.Status // solo significativo si el producto vende sellado
	PortionsStatus domaininv.Status // solo significativo si el producto vende porciones
}

// ListByClub devuelve el inventario del club con estados calculados contra
// el inventario ideal del dueño (configuración de cuenta, no global).
func (uc *QueryUseCase) ListByClub(ctx context.Context, clubID, ownerID string) ([]StockItem, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	ideal := entity.DefaultIdealStock
	if ownerID != "" {
		owner, err := uc.userRepo.GetByID(ownerID)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.IdealStock > 0 {
			ideal = owner.IdealStock
		}
	}

	records, err := uc.invRepo.ListByClub(clubID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByClub(clubID, true)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	items := make([]StockItem, 0, len(records))
	for _, rec := range records {
		items = append(items, StockItem{
			Record:         rec,
			Product:        byID[rec.ProductID],
			SealedStatus:   domaininv.ComputeStatus(rec.Sealed, ideal),
			PortionsStatus: domaininv.ComputeStatus(rec.Preparation.CurrentPortions, ideal),
		})
	}
	return items, nil
}

// MovementHistory historial de movimientos de un producto, descendente por
// fecha, con rango opcional.
func (uc *QueryUseCase) MovementHistory(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	if productID == "" {
		return nil, domain.ErrMissingField
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.movRepo.ListByProduct(productID, from, to, limit, offset)
}
