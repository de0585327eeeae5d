package repository

import "github.com/Gloweldev/ArximiaBackend/internal/domain/entity"

// InventoryRepository define el puerto para el registro de inventario por
// (producto, club). Devuelve nil cuando el registro no existe: la creación
// perezosa es una decisión del caso de uso, no una lectura con efectos.
type InventoryRepository interface {
	Get(productID, clubID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar el
	// read-modify-write de saldos por clave. Usar solo dentro de una tx.
	GetForUpdate(productID, clubID string) (*entity.InventoryRecord, error)
	Create(rec *entity.InventoryRecord) error
	Upsert(rec *entity.InventoryRecord) error
	ListByClub(clubID string) ([]*entity.InventoryRecord, error)
}
