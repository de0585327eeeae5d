package dto

import "github.com/shopspring/decimal"

// CriticalStockDTO producto con stock crítico o bajo para el dashboard.
type CriticalStockDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Stock     string `json:"stock"` // ej. "3 unidades" o "12 porciones"
	Status    string `json:"status"`
}

// DashboardKPIsResponse KPIs del mes en curso contra el mes anterior.
type DashboardKPIsResponse struct {
	SalesTotal        decimal.Decimal    `json:"sales_total"`
	ExpensesTotal     decimal.Decimal    `json:"expenses_total"`
	NetProfit         decimal.Decimal    `json:"net_profit"`
	SalesGrowth       decimal.Decimal    `json:"sales_growth"`
	NetProfitGrowth   decimal.Decimal    `json:"net_profit_growth"`
	InventoryCritical int                `json:"inventory_critical"`
	InventoryItems    []CriticalStockDTO `json:"inventory_items"`
}
