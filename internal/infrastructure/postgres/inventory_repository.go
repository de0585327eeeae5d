package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx). Una fila por par (producto, club).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `
	id, product_id, club_id, sealed,
	prep_units, prep_portions_per_unit, prep_current_portions, prep_portion_price, prep_portion_size,
	updated_at`

// Get obtiene el registro de un producto en un club. Devuelve nil si no existe.
func (r *InventoryRepo) Get(productID, clubID string) (*entity.InventoryRecord, error) {
	query := `SELECT` + inventoryColumns + `
		FROM inventory_records WHERE product_id = $1 AND club_id = $2`
	rec, err := scanInventoryRow(r.q.QueryRow(context.Background(), query, productID, clubID))
	if err != nil {
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return rec, nil
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Devuelve nil si no existe; usar solo dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(productID, clubID string) (*entity.InventoryRecord, error) {
	query := `SELECT` + inventoryColumns + `
		FROM inventory_records WHERE product_id = $1 AND club_id = $2
		FOR UPDATE`
	rec, err := scanInventoryRow(r.q.QueryRow(context.Background(), query, productID, clubID))
	if err != nil {
		return nil, fmt.Errorf("get inventory record for update: %w", err)
	}
	return rec, nil
}

// Create inserta un registro nuevo. ON CONFLICT DO NOTHING: si otro caller
// ganó la carrera de creación perezosa, el insert es un no-op y el caller
// debe releer.
func (r *InventoryRepo) Create(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records
			(id, product_id, club_id, sealed,
			 prep_units, prep_portions_per_unit, prep_current_portions, prep_portion_price, prep_portion_size,
			 updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (product_id, club_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ProductID, rec.ClubID, rec.Sealed,
		rec.Preparation.Units, rec.Preparation.PortionsPerUnit, rec.Preparation.CurrentPortions,
		rec.Preparation.PortionPrice, rec.Preparation.PortionSize,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory record: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza los saldos del registro.
func (r *InventoryRepo) Upsert(rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory_records
			(id, product_id, club_id, sealed,
			 prep_units, prep_portions_per_unit, prep_current_portions, prep_portion_price, prep_portion_size,
			 updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (product_id, club_id)
		DO UPDATE SET
			sealed = EXCLUDED.sealed,
			prep_units = EXCLUDED.prep_units,
			prep_portions_per_unit = EXCLUDED.prep_portions_per_unit,
			prep_current_portions = EXCLUDED.prep_current_portions,
			prep_portion_price = EXCLUDED.prep_portion_price,
			prep_portion_size = EXCLUDED.prep_portion_size,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.ProductID, rec.ClubID, rec.Sealed,
		rec.Preparation.Units, rec.Preparation.PortionsPerUnit, rec.Preparation.CurrentPortions,
		rec.Preparation.PortionPrice, rec.Preparation.PortionSize,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory record: %w", err)
	}
	return nil
}

// ListByClub devuelve todos los registros de inventario de un club.
func (r *InventoryRepo) ListByClub(clubID string) ([]*entity.InventoryRecord, error) {
	query := `SELECT` + inventoryColumns + `
		FROM inventory_records WHERE club_id = $1
		ORDER BY updated_at DESC`
	rows, err := r.q.Query(context.Background(), query, clubID)
	if err != nil {
		return nil, fmt.Errorf("list inventory by club: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventoryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanInventoryRow(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ID, &rec.ProductID, &rec.ClubID, &rec.Sealed,
		&rec.Preparation.Units, &rec.Preparation.PortionsPerUnit, &rec.Preparation.CurrentPortions,
		&rec.Preparation.PortionPrice, &rec.Preparation.PortionSize,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
