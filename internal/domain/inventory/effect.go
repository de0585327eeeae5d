package inventory

import (
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// Effect es el delta que un movimiento produce sobre los saldos de un
// registro de inventario. Los deltas ya vienen con signo; Apply valida la
// no-negatividad antes de mutar.
type Effect struct {
	Sealed       int // delta de unidades selladas
	PrepUnits    int // delta de envases de preparación
	PrepPortions int // delta de porciones disponibles
}

// EffectFor resuelve la tabla cerrada de efectos por (tipo, unidad):
//
//	compra/sealed   +q sellado
//	compra/portion  +q envases, +q*porcionesPorEnvase porciones
//	venta/sealed    -q sellado
//	venta/portion   -q porciones
//	uso/portion     -q porciones
//	ajuste/sealed   +q sellado (el signo de la corrección lo decide el caller)
//	ajuste/portion  +q envases, +q*porcionesPorEnvase porciones
//
// Cualquier combinación fuera de la tabla (ej. uso/sealed) es un error de
// construcción, no un caso silenciosamente ignorado. portionsPerUnit en cero
// se trata como 1.
func EffectFor(movType, unit string, quantity, portionsPerUnit int) (Effect, error) {
	if quantity <= 0 {
		return Effect{}, domain.ErrInvalidQuantity
	}
	ppu := portionsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	switch {
	case movType == entity.MovementCompra && unit == entity.UnitSealed:
		return Effect{Sealed: quantity}, nil
	case movType == entity.MovementCompra && unit == entity.UnitPortion:
		return Effect{PrepUnits: quantity, PrepPortions: quantity * ppu}, nil
	case movType == entity.MovementVenta && unit == entity.UnitSealed:
		return Effect{Sealed: -quantity}, nil
	case movType == entity.MovementVenta && unit == entity.UnitPortion:
		return Effect{PrepPortions: -quantity}, nil
	case movType == entity.MovementUso && unit == entity.UnitPortion:
		return Effect{PrepPortions: -quantity}, nil
	case movType == entity.MovementAjuste && unit == entity.UnitSealed:
		return Effect{Sealed: quantity}, nil
	case movType == entity.MovementAjuste && unit == entity.UnitPortion:
		return Effect{PrepUnits: quantity, PrepPortions: quantity * ppu}, nil
	}
	return Effect{}, domain.ErrInvalidInput
}

// Apply muta los saldos del registro según el efecto. Si algún eje quedara
// negativo devuelve ErrInsufficientStock sin tocar el registro: se rechaza,
// nunca se recorta a cero.
func Apply(rec *entity.InventoryRecord, e Effect) error {
	newSealed := rec.Sealed + e.Sealed
	newUnits := rec.Preparation.Units + e.PrepUnits
	newPortions := rec.Preparation.CurrentPortions + e.PrepPortions
	if newSealed < 0 || newPortions < 0 {
		return domain.ErrInsufficientStock
	}
	if newUnits < 0 {
		newUnits = 0
	}
	rec.Sealed = newSealed
	rec.Preparation.Units = newUnits
	rec.Preparation.CurrentPortions = newPortions
	return nil
}
