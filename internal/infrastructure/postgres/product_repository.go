package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
	"github.com/Gloweldev/ArximiaBackend/pkg/textnorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del catálogo sobre PostgreSQL (usable con pool o tx).
// La columna name_normalized guarda el nombre sin acentos y en minúsculas
// para la búsqueda por prefijo.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, club_id, user_id, type, name, brand, category, flavor, image_url,
	portions, portion_size, portion_price, sale_price, purchase_price,
	archived, created_at`

// Create inserta un producto. ErrDuplicate si el id ya existe.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products
			(id, club_id, user_id, type, name, name_normalized, brand, category, flavor, image_url,
			 portions, portion_size, portion_price, sale_price, purchase_price, archived, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClubID, p.UserID, p.Type, p.Name, textnorm.Fold(p.Name),
		p.Brand, p.Category, p.Flavor, p.ImageURL,
		p.Portions, p.PortionSize, p.PortionPrice, p.SalePrice, p.PurchasePrice,
		p.Archived, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProductRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListByClub productos de un club, opcionalmente incluyendo archivados.
func (r *ProductRepo) ListByClub(clubID string, includeArchived bool) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE club_id = $1`
	if !includeArchived {
		query += ` AND archived = false`
	}
	query += ` ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, clubID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchByName busca por prefijo sobre name_normalized, excluyendo archivados.
func (r *ProductRepo) SearchByName(clubID, normalizedPrefix string, limit int) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products
		WHERE club_id = $1 AND archived = false AND name_normalized LIKE $2 || '%'
		ORDER BY name ASC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, clubID, normalizedPrefix, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update actualiza los datos del producto (y su nombre normalizado).
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET
			type = $2, name = $3, name_normalized = $4, brand = $5, category = $6,
			flavor = $7, image_url = $8, portions = $9, portion_size = $10,
			portion_price = $11, sale_price = $12, purchase_price = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		p.ID, p.Type, p.Name, textnorm.Fold(p.Name), p.Brand, p.Category,
		p.Flavor, p.ImageURL, p.Portions, p.PortionSize,
		p.PortionPrice, p.SalePrice, p.PurchasePrice,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetArchived marca o desmarca el borrado suave.
func (r *ProductRepo) SetArchived(id string, archived bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET archived = $2 WHERE id = $1`, id, archived)
	if err != nil {
		return fmt.Errorf("set archived: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProductRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.ClubID, &p.UserID, &p.Type, &p.Name, &p.Brand, &p.Category,
		&p.Flavor, &p.ImageURL, &p.Portions, &p.PortionSize,
		&p.PortionPrice, &p.SalePrice, &p.PurchasePrice,
		&p.Archived, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.ClubID, &p.UserID, &p.Type, &p.Name, &p.Brand, &p.Category,
			&p.Flavor, &p.ImageURL, &p.Portions, &p.PortionSize,
			&p.PortionPrice, &p.SalePrice, &p.PurchasePrice,
			&p.Archived, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
