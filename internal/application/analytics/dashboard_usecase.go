package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	appinv "github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	domaininv "github.com/Gloweldev/ArximiaBackend/internal/domain/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// DashboardUseCase KPIs del club: totales del mes en curso contra el mes
// anterior y productos con stock crítico o bajo. Vista derivada de solo
// lectura sobre ventas, gastos e inventario.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	invQuery      *appinv.QueryUseCase
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, invQuery *appinv.QueryUseCase) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, invQuery: invQuery}
}

// KPIs calcula los indicadores del club: ventas, gastos y utilidad del mes
// en curso, crecimiento contra el mes anterior y el listado de inventario
// crítico/bajo del dueño.
func (uc *DashboardUseCase) KPIs(ctx context.Context, clubID, ownerID string) (*dto.DashboardKPIsResponse, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)

	current, err := uc.analyticsRepo.PeriodTotals(ctx, clubID, monthStart, now)
	if err != nil {
		return nil, err
	}
	previous, err := uc.analyticsRepo.PeriodTotals(ctx, clubID, prevStart, monthStart)
	if err != nil {
		return nil, err
	}

	netCurrent := current.SalesTotal.Sub(current.ExpensesTotal)
	netPrevious := previous.SalesTotal.Sub(previous.ExpensesTotal)

	items, err := uc.criticalInventory(ctx, clubID, ownerID)
	if err != nil {
		return nil, err
	}
	critical := 0
	for _, it := range items {
		if it.Status == string(domaininv.StatusCritical) {
			critical++
		}
	}

	return &dto.DashboardKPIsResponse{
		SalesTotal:        current.SalesTotal,
		ExpensesTotal:     current.ExpensesTotal,
		NetProfit:         netCurrent,
		SalesGrowth:       growthPercent(current.SalesTotal, previous.SalesTotal),
		NetProfitGrowth:   growthPercent(netCurrent, netPrevious),
		InventoryCritical: critical,
		InventoryItems:    items,
	}, nil
}

// criticalInventory filas de inventario en estado crítico o bajo, una por
// eje de venta del producto.
func (uc *DashboardUseCase) criticalInventory(ctx context.Context, clubID, ownerID string) ([]dto.CriticalStockDTO, error) {
	stock, err := uc.invQuery.ListByClub(ctx, clubID, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CriticalStockDTO, 0)
	for _, it := range stock {
		if it.Product == nil {
			continue
		}
		if it.Product.SellsSealed() && it.SealedStatus != domaininv.StatusNormal {
			out = append(out, dto.CriticalStockDTO{
				ProductID: it.Product.ID,
				Name:      it.Product.Name,
				Stock:     fmt.Sprintf("%d unidades", it.Record.Sealed),
				Status:    string(it.SealedStatus),
			})
		}
		if it.Product.SellsPortions() && it.PortionsStatus != domaininv.StatusNormal {
			out = append(out, dto.CriticalStockDTO{
				ProductID: it.Product.ID,
				Name:      it.Product.Name,
				Stock:     fmt.Sprintf("%d porciones", it.Record.Preparation.CurrentPortions),
				Status:    string(it.PortionsStatus),
			})
		}
	}
	return out, nil
}

// growthPercent variación porcentual contra el periodo anterior. Sin base de
// comparación (anterior en cero) reporta 100 si hubo actividad y 0 si no.
func growthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
