package inventory

import (
	"fmt"
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// Replay reconstruye los saldos de un registro plegando todos sus movimientos
// en orden de fecha a través de la misma tabla de efectos que usa el motor.
// Es la operación de auditoría/reparación: el log es la fuente de verdad y
// los saldos cacheados deben coincidir con este pliegue.
//
// Los movimientos deben venir ordenados ascendentemente por fecha y
// pertenecer todos al mismo par (producto, club).
func Replay(rec *entity.InventoryRecord, movements []*entity.Movement, now time.Time) error {
	rec.Sealed = 0
	rec.Preparation.Units = 0
	rec.Preparation.CurrentPortions = 0
	for _, m := range movements {
		e, err := EffectFor(m.Type, m.Unit, m.Quantity, rec.Preparation.PortionsPerUnit)
		if err != nil {
			return fmt.Errorf("movimiento %s (%s/%s): %w", m.ID, m.Type, m.Unit, err)
		}
		if err := Apply(rec, e); err != nil {
			return fmt.Errorf("movimiento %s (%s/%s): %w", m.ID, m.Type, m.Unit, err)
		}
	}
	rec.UpdatedAt = now
	return nil
}
