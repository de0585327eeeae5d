package expenses

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gloweldev/ArximiaBackend/internal/application/dto"
	"github.com/Gloweldev/ArximiaBackend/internal/application/inventory"
	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/repository"
)

// UseCase registra gastos. Un gasto de categoría purchase acompaña a un
// movimiento de compra: primero se intenta el movimiento (que puede fallar
// por validación) y solo entonces se registra el dinero.
type UseCase struct {
	engine      *inventory.RegisterMovementUseCase
	expenseRepo repository.ExpenseRepository
}

// NewUseCase construye el caso de uso de gastos.
func NewUseCase(engine *inventory.RegisterMovementUseCase, expenseRepo repository.ExpenseRepository) *UseCase {
	return &UseCase{engine: engine, expenseRepo: expenseRepo}
}

// Register valida y persiste un gasto. Para category purchase exige
// product_id, quantity y unit, y aplica el movimiento de compra antes de
// guardar el gasto.
func (uc *UseCase) Register(ctx context.Context, userID string, in dto.RegisterExpenseRequest) (*entity.Expense, error) {
	if in.ClubID == "" || in.Category == "" || userID == "" {
		return nil, domain.ErrMissingField
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	if in.Category == entity.ExpensePurchase {
		if in.ProductID == "" || in.Unit == "" {
			return nil, domain.ErrMissingField
		}
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		desc := in.Description
		if desc == "" {
			desc = fmt.Sprintf("Gasto de compra: $%s", in.Amount.StringFixed(2))
		} else {
			desc = fmt.Sprintf("%s - Gasto: $%s", in.Description, in.Amount.StringFixed(2))
		}
		_, err := uc.engine.Apply(ctx, inventory.MovementInput{
			ProductID:   in.ProductID,
			ClubID:      in.ClubID,
			Type:        entity.MovementCompra,
			Unit:        in.Unit,
			Quantity:    in.Quantity,
			Description: desc,
			UserID:      userID,
		})
		if err != nil {
			return nil, err
		}
	}

	expense := &entity.Expense{
		ID:          uuid.New().String(),
		ClubID:      in.ClubID,
		ProductID:   in.ProductID,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		UserID:      userID,
		Date:        time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// RecordPurchaseFromMovement registra el gasto derivado de un movimiento de
// compra ya aplicado por el endpoint de inventario (quantity × purchasePrice).
func (uc *UseCase) RecordPurchaseFromMovement(ctx context.Context, clubID, productID, userID, description string, quantity int, purchasePrice decimal.Decimal) (*entity.Expense, error) {
	total := purchasePrice.Mul(decimal.NewFromInt(int64(quantity)))
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		ClubID:      clubID,
		ProductID:   productID,
		Category:    entity.ExpenseProducto,
		Amount:      total,
		Description: fmt.Sprintf("Compra de inventario: %s", description),
		UserID:      userID,
		Date:        time.Now(),
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListByClub gastos del club con rango opcional de fechas, descendente.
func (uc *UseCase) ListByClub(ctx context.Context, clubID string, from, to *time.Time) ([]*entity.Expense, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	return uc.expenseRepo.ListByClub(clubID, from, to)
}

// MonthlyKPIs totales del mes en curso contra el mes anterior.
func (uc *UseCase) MonthlyKPIs(ctx context.Context, clubID string, now time.Time) (*dto.ExpenseKPIsResponse, error) {
	if clubID == "" {
		return nil, domain.ErrMissingField
	}
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfPrev := startOfMonth.AddDate(0, -1, 0)

	current, err := uc.sumBetween(clubID, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	previous, err := uc.sumBetween(clubID, startOfPrev, startOfMonth.Add(-time.Second))
	if err != nil {
		return nil, err
	}

	change := decimal.Zero
	if previous.IsPositive() {
		change = current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return &dto.ExpenseKPIsResponse{
		CurrentMonthTotal:  current,
		PreviousMonthTotal: previous,
		ChangePercent:      change,
	}, nil
}

func (uc *UseCase) sumBetween(clubID string, from, to time.Time) (decimal.Decimal, error) {
	list, err := uc.expenseRepo.ListByClub(clubID, &from, &to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range list {
		total = total.Add(e.Amount)
	}
	return total, nil
}
