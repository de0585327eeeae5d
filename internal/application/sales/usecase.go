package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// LineItemError identifica la línea de venta cuyo movimiento de stock falló,
// para que el caller distinga "stock insuficiente de X" de un fallo genérico.
type LineItemError struct {
	ProductID string
	GroupName string
	Err       error
}

func (e *LineItemError) Error() string {
	return fmt.Sprintf("línea de venta (producto %s): %v", e.ProductID, e.Err)
}

func (e *LineItemError) Unwrap() error { return e.Err }

// UseCase registra ventas. Cada línea descuenta stock a través del motor de
// movimientos de forma secuencial e independiente: no hay transacción
// multi-ítem. Si la línea N falla, las líneas anteriores quedan aplicadas
// (limitación conocida) y la venta NO se persiste.
type UseCase struct {
	engine     *inventory.RegisterMovementUseCase
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(engine *inventory.RegisterMovementUseCase, saleRepo repository.SaleRepository, clientRepo repository.ClientRepository) *UseCase {
	return &UseCase{engine: engine, saleRepo: saleRepo, clientRepo: clientRepo}
}

// Register aplica los descuentos de stock línea a línea y, solo si todas las
// líneas pasaron, persiste la venta y actualiza las estadísticas del cliente.
func (uc *UseCase) Register(ctx context.Context, employeeID string, in dto.RegisterSaleRequest) (*entity.Sale, error) {
	if in.ClubID == "" || employeeID == "" {
		return nil, domain.ErrMissingField
	}
	if len(in.ItemGroups) == 0 {
		return nil, domain.ErrInvalidInput
	}

	for _, group := range in.ItemGroups {
		for _, item := range group.Items {
			unit := entity.UnitPortion
			if item.Type == entity.ProductSealed {
				unit = entity.UnitSealed
			}
			qty := item.Quantity
			if unit == entity.UnitPortion && item.Portions > 0 {
				qty = item.Portions
			}
			desc := fmt.Sprintf("Venta de %d %s", qty, unitLabel(unit))
			_, err := uc.engine.Apply(ctx, inventory.MovementInput{
				ProductID:   item.ProductID,
				ClubID:      in.ClubID,
				Type:        entity.MovementVenta,
				Unit:        unit,
				Quantity:    qty,
				Description: desc,
				UserID:      employeeID,
			})
			if err != nil {
				return nil, &LineItemError{ProductID: item.ProductID, GroupName: group.Name, Err: err}
			}
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		ClubID:     in.ClubID,
		EmployeeID: employeeID,
		ClientID:   in.ClientID,
		ItemGroups: toEntityGroups(in.ItemGroups),
		Total:      in.Total,
		Status:     entity.SaleCompleted,
		CreatedAt:  now,
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	if in.ClientID != "" {
		// Estadísticas del cliente: mejor esfuerzo, la venta ya quedó firme.
		if err := uc.clientRepo.RegisterPurchase(in.ClientID, in.ClubID, in.Total, now); err != nil {
			log.Warn().Err(err).
				Str("sale_id", sale.ID).
				Str("client_id", in.ClientID).
				Msg("estadísticas del cliente no actualizadas")
		}
	}
	return sale, nil
}

// ListByClub ventas del club, descendente por fecha, con rango opcional.
func (uc *UseCase) ListByClub(ctx context.Context, clubID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.saleRepo.ListByClub(clubID, from, to, limit, offset)
}

// GetByID obtiene una venta puntual.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if id == "" {
		return nil, domain.ErrMissingField
	}
	return uc.saleRepo.GetByID(id)
}

func toEntityGroups(groups []dto.SaleGroupRequest) []entity.SaleGroup {
	out := make([]entity.SaleGroup, 0, len(groups))
	for _, g := range groups {
		items := make([]entity.SaleItem, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, entity.SaleItem{
				ProductID:       it.ProductID,
				Type:            it.Type,
				Quantity:        it.Quantity,
				UnitPrice:       it.UnitPrice,
				Portions:        it.Portions,
				PricePerPortion: it.PricePerPortion,
				CustomPrice:     it.CustomPrice,
			})
		}
		out = append(out, entity.SaleGroup{Name: g.Name, Items: items})
	}
	return out
}

func unitLabel(unit string) string {
	if unit == entity.UnitSealed {
		return "unidades"
	}
	return "porciones"
}
