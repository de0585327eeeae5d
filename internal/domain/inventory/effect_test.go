package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gloweldev/ArximiaBackend/internal/domain"
	"github.com/Gloweldev/ArximiaBackend/internal/domain/entity"
)

func TestEffectFor_TablaCompleta(t *testing.T) {
	cases := []struct {
		name string
		typ  string
		unit string
		qty  int
		ppu  int
		want Effect
	}{
		{"compra sellado suma unidades", entity.MovementCompra, entity.UnitSealed, 3, 1, Effect{Sealed: 3}},
		{"compra porción suma envases y porciones", entity.MovementCompra, entity.UnitPortion, 2, 20, Effect{PrepUnits: 2, PrepPortions: 40}},
		{"compra porción sin ppu asume 1", entity.MovementCompra, entity.UnitPortion, 5, 0, Effect{PrepUnits: 5, PrepPortions: 5}},
		{"venta sellado resta unidades", entity.MovementVenta, entity.UnitSealed, 4, 1, Effect{Sealed: -4}},
		{"venta porción resta porciones", entity.MovementVenta, entity.UnitPortion, 7, 20, Effect{PrepPortions: -7}},
		{"uso porción resta porciones", entity.MovementUso, entity.UnitPortion, 2, 20, Effect{PrepPortions: -2}},
		{"ajuste sellado suma unidades", entity.MovementAjuste, entity.UnitSealed, 6, 1, Effect{Sealed: 6}},
		{"ajuste porción suma envases y porciones", entity.MovementAjuste, entity.UnitPortion, 1, 12, Effect{PrepUnits: 1, PrepPortions: 12}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EffectFor(tc.typ, tc.unit, tc.qty, tc.ppu)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEffectFor_CombinacionesInvalidas(t *testing.T) {
	// uso/sealed no existe en la tabla: debe fallar en la construcción,
	// nunca aplicarse como no-op.
	_, err := EffectFor(entity.MovementUso, entity.UnitSealed, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = EffectFor("prestamo", entity.UnitSealed, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = EffectFor(entity.MovementVenta, "caja", 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEffectFor_CantidadInvalida(t *testing.T) {
	_, err := EffectFor(entity.MovementVenta, entity.UnitSealed, 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = EffectFor(entity.MovementCompra, entity.UnitSealed, -5, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApply_RechazaSaldoNegativoSinMutar(t *testing.T) {
	rec := entity.NewInventoryRecord("r1", "p1", "c1", 20, time.Now())
	rec.Sealed = 3
	rec.Preparation.CurrentPortions = 10

	err := Apply(rec, Effect{Sealed: -4})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	// El registro no cambió: se rechaza, nunca se recorta a cero.
	assert.Equal(t, 3, rec.Sealed)
	assert.Equal(t, 10, rec.Preparation.CurrentPortions)

	err = Apply(rec, Effect{PrepPortions: -11})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, rec.Preparation.CurrentPortions)
}

func TestApply_VentaExactaDejaCero(t *testing.T) {
	rec := entity.NewInventoryRecord("r1", "p1", "c1", 1, time.Now())
	rec.Sealed = 3

	require.NoError(t, Apply(rec, Effect{Sealed: -3}))
	assert.Equal(t, 0, rec.Sealed)

	// Con saldo cero cualquier venta posterior se rechaza.
	err := Apply(rec, Effect{Sealed: -1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApply_EnvasesSeRecortanACero(t *testing.T) {
	rec := entity.NewInventoryRecord("r1", "p1", "c1", 10, time.Now())
	rec.Preparation.Units = 1
	rec.Preparation.CurrentPortions = 10

	// Un efecto que solo consume porciones no deja envases negativos.
	require.NoError(t, Apply(rec, Effect{PrepUnits: -2, PrepPortions: -5}))
	assert.Equal(t, 0, rec.Preparation.Units)
	assert.Equal(t, 5, rec.Preparation.CurrentPortions)
}

func TestReplay_ReconstruyeSaldosDesdeElLog(t *testing.T) {
	now := time.Now()
	rec := entity.NewInventoryRecord("r1", "p1", "c1", 20, now)
	// Saldos cacheados corruptos a propósito.
	rec.Sealed = 999
	rec.Preparation.CurrentPortions = 999

	movs := []*entity.Movement{
		{ID: "m1", Type: entity.MovementCompra, Unit: entity.UnitSealed, Quantity: 10, Date: now.Add(-4 * time.Hour)},
		{ID: "m2", Type: entity.MovementVenta, Unit: entity.UnitSealed, Quantity: 3, Date: now.Add(-3 * time.Hour)},
		{ID: "m3", Type: entity.MovementCompra, Unit: entity.UnitPortion, Quantity: 2, Date: now.Add(-2 * time.Hour)},
		{ID: "m4", Type: entity.MovementUso, Unit: entity.UnitPortion, Quantity: 15, Date: now.Add(-time.Hour)},
	}
	require.NoError(t, Replay(rec, movs, now))

	assert.Equal(t, 7, rec.Sealed)
	assert.Equal(t, 2, rec.Preparation.Units)
	assert.Equal(t, 25, rec.Preparation.CurrentPortions) // 2*20 - 15
	assert.Equal(t, now, rec.UpdatedAt)
}

func TestReplay_LogInvalidoReportaElMovimiento(t *testing.T) {
	now := time.Now()
	rec := entity.NewInventoryRecord("r1", "p1", "c1", 1, now)

	// Venta antes de cualquier compra: el pliegue queda negativo.
	movs := []*entity.Movement{
		{ID: "m-malo", Type: entity.MovementVenta, Unit: entity.UnitSealed, Quantity: 1, Date: now},
	}
	err := Replay(rec, movs, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "m-malo")
}
