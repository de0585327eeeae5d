package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	domaininv "github.com/Gloweldev/ArximiaBackend/internal/domain/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// RegisterMovementUseCase es el motor de mutación de stock: el único camino
// por el que cambian los saldos de inventario. Cada movimiento se aplica como
// unidad transaccional con bloqueo de fila (SELECT FOR UPDATE), de modo que
// dos ventas concurrentes sobre el mismo (producto, club) se serializan y no
// pueden llevar el saldo a negativo.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el motor.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para aplicar un movimiento. Quantity siempre
// positivo; la dirección la implica Type según la tabla de efectos.
type MovementInput struct {
	ProductID   string
	ClubID      string
	Type        string // venta, uso, compra, ajuste
	Unit        string // sealed, portion
	Quantity    int
	Description string
	UserID      string
}

// Apply valida el movimiento, lo anota en el log y actualiza el saldo del
// registro de inventario como una sola unidad lógica. Si el registro no
// existe se crea perezosamente con saldos en cero (portionsPerUnit sembrado
// del catálogo). Fallos: ErrMissingField, ErrInvalidQuantity,
// ErrInsufficientStock (sin escritura parcial), ErrNotFound si el producto
// no existe. Sin reintentos: el caller decide qué hacer con el error.
func (uc *RegisterMovementUseCase) Apply(ctx context.Context, in MovementInput) (*entity.InventoryRecord, error) {
	if in.ProductID == "" || in.ClubID == "" || in.Type == "" || in.Unit == "" || in.UserID == "" {
		return nil, domain.ErrMissingField
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	// La combinación (tipo, unidad) se valida antes de abrir la transacción.
	if _, err := domaininv.EffectFor(in.Type, in.Unit, in.Quantity, 1); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var updated *entity.InventoryRecord

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		rec, err := lockOrCreateRecord(invRepo, product, in.ProductID, in.ClubID, now)
		if err != nil {
			return err
		}

		eff, err := domaininv.EffectFor(in.Type, in.Unit, in.Quantity, rec.Preparation.PortionsPerUnit)
		if err != nil {
			return err
		}
		if err := domaininv.Apply(rec, eff); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			ClubID:      in.ClubID,
			Type:        in.Type,
			Unit:        in.Unit,
			Quantity:    in.Quantity,
			Description: in.Description,
			UserID:      in.UserID,
			Date:        now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		rec.UpdatedAt = now
		if err := invRepo.Upsert(rec); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RebuildFromLog repone los saldos cacheados replegando el log completo del
// par (producto, club) con la misma tabla de efectos. Operación de
// reparación/auditoría: el log de movimientos es la fuente de verdad.
func (uc *RegisterMovementUseCase) RebuildFromLog(ctx context.Context, productID, clubID string) (*entity.InventoryRecord, error) {
	if productID == "" || clubID == "" {
		return nil, domain.ErrMissingField
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var rebuilt *entity.InventoryRecord

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error {
		rec, err := lockOrCreateRecord(invRepo, product, productID, clubID, now)
		if err != nil {
			return err
		}
		movements, err := movRepo.ListForReplay(productID, clubID)
		if err != nil {
			return err
		}
		if err := domaininv.Replay(rec, movements, now); err != nil {
			return err
		}
		if err := invRepo.Upsert(rec); err != nil {
			return err
		}
		rebuilt = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rebuilt, nil
}

// lockOrCreateRecord bloquea la fila del par (producto, club), creándola en
// cero si no existe. FOR UPDATE sobre una fila ausente no bloquea nada: dos
// primeros movimientos concurrentes pueden leer nil a la vez, y el perdedor
// del INSERT (ON CONFLICT DO NOTHING) quedaría operando sobre su registro en
// memoria, pisando el saldo del ganador al hacer Upsert. Por eso tras Create
// se relee con FOR UPDATE y se continúa con la fila que realmente ganó.
func lockOrCreateRecord(
	invRepo repository.InventoryRepository,
	product *entity.Product,
	productID, clubID string,
	now time.Time,
) (*entity.InventoryRecord, error) {
	rec, err := invRepo.GetForUpdate(productID, clubID)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}
	candidate := newRecordFromCatalog(product, clubID, now)
	if err := invRepo.Create(candidate); err != nil {
		return nil, err
	}
	rec, err = invRepo.GetForUpdate(productID, clubID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		// Tras un INSERT exitoso o en conflicto la fila existe siempre.
		return nil, fmt.Errorf("registro de inventario %s/%s no disponible tras crearlo", productID, clubID)
	}
	return rec, nil
}

// newRecordFromCatalog crea el registro inicial de un producto con saldos en
// cero, sembrando la definición de porciones desde el catálogo.
func newRecordFromCatalog(product *entity.Product, clubID string, now time.Time) *entity.InventoryRecord {
	rec := entity.NewInventoryRecord(uuid.New().String(), product.ID, clubID, product.Portions, now)
	rec.Preparation.PortionPrice = product.PortionPrice
	rec.Preparation.PortionSize = product.PortionSize
	return rec
}
