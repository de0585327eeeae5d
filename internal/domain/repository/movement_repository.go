package repository

import (
	"time"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

// MovementRepository define el puerto del log de movimientos. El log es
// append-only: solo existe Create y lecturas; no hay update ni delete.
type MovementRepository interface {
	Create(m *entity.Movement) error
	// ListByProduct devuelve el historial descendente por fecha, con rango
	// opcional de fechas y paginación.
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	// ListForReplay devuelve todos los movimientos del par (producto, club)
	// en orden ascendente de fecha, para reconstruir saldos desde el log.
	ListForReplay(productID, clubID string) ([]*entity.Movement, error)
}
