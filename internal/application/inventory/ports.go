package inventory

import (
	"context"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Junto con el bloqueo de fila del registro de
// inventario garantiza que el read-modify-write de saldos por (producto,
// club) sea atómico frente a otros escritores de la misma clave.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
