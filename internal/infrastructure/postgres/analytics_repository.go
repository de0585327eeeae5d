package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
// Siempre sobre el pool: nunca participa en transacciones de escritura.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// PeriodTotals totales de ventas y gastos de un club en [from, to).
// Solo cuenta ventas completadas.
func (r *AnalyticsRepo) PeriodTotals(ctx context.Context, clubID string, from, to time.Time) (repository.PeriodTotals, error) {
	var t repository.PeriodTotals
	query := `
		SELECT
			COALESCE((SELECT SUM(total) FROM sales
				WHERE club_id = $1 AND status = 'completed' AND created_at >= $2 AND created_at < $3), 0),
			COALESCE((SELECT COUNT(*) FROM sales
				WHERE club_id = $1 AND status = 'completed' AND created_at >= $2 AND created_at < $3), 0),
			COALESCE((SELECT SUM(amount) FROM expenses
				WHERE club_id = $1 AND date >= $2 AND date < $3), 0),
			COALESCE((SELECT COUNT(*) FROM expenses
				WHERE club_id = $1 AND date >= $2 AND date < $3), 0)`
	err := r.pool.QueryRow(ctx, query, clubID, from, to).Scan(
		&t.SalesTotal, &t.SalesCount, &t.ExpensesTotal, &t.ExpensesCount,
	)
	if err != nil {
		return repository.PeriodTotals{}, fmt.Errorf("period totals: %w", err)
	}
	return t, nil
}
