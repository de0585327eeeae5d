package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTotals agregados financieros de un club en un rango de fechas.
type PeriodTotals struct {
	SalesTotal    decimal.Decimal
	SalesCount    int
	ExpensesTotal decimal.Decimal
	ExpensesCount int
}

// AnalyticsRepository define el puerto de lecturas agregadas para el
// dashboard. Vistas derivadas de solo lectura: pueden ver saldos ligeramente
// desactualizados.
type AnalyticsRepository interface {
	PeriodTotals(ctx context.Context, clubID string, from, to time.Time) (PeriodTotals, error)
}
