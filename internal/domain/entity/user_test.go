package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPlan_LimitesYPrecios(t *testing.T) {
	cases := []struct {
		plan         string
		clubsMax     int
		employeesMax int
		price        int64
	}{
		{PlanBasico, 1, 2, 110},
		{PlanIntermedio, 2, 4, 150},
		{PlanPremium, 3, 10, 200},
	}
	for _, tc := range cases {
		t.Run(tc.plan, func(t *testing.T) {
			s := Subscription{Plan: tc.plan, ExtraClubs: 9, ExtraEmployees: 9}
			s.ApplyPlan()
			assert.Equal(t, tc.clubsMax, s.MaxClubs())
			assert.Equal(t, tc.employeesMax, s.MaxEmployees())
			assert.True(t, s.Price.Equal(decimal.NewFromInt(tc.price)))
			assert.Nil(t, s.ExpiresAt)
			// Los extras solo aplican al plan personalizado.
			assert.Zero(t, s.ExtraClubs)
			assert.Zero(t, s.ExtraEmployees)
		})
	}
}

func TestApplyPlan_PersonalizadoSumaExtras(t *testing.T) {
	s := Subscription{Plan: PlanPersonalizado, ExtraClubs: 2, ExtraEmployees: 3}
	s.ApplyPlan()

	assert.Equal(t, 3, s.MaxClubs())     // 1 base + 2 extra
	assert.Equal(t, 5, s.MaxEmployees()) // 2 base + 3 extra
	// 100 base + 2*50 + 3*20
	assert.True(t, s.Price.Equal(decimal.NewFromInt(260)), "precio %s", s.Price)
}

func TestApplyPlan_PruebaFijaExpiracion(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := Subscription{Plan: PlanPrueba, StartDate: start}
	s.ApplyPlan()

	require.NotNil(t, s.ExpiresAt)
	assert.Equal(t, start.Add(TrialDays*24*time.Hour), *s.ExpiresAt)
	assert.Equal(t, 1, s.MaxClubs())
	assert.Equal(t, 2, s.MaxEmployees())
	assert.True(t, s.Price.IsZero())
}

func TestApplyPlan_PruebaYaUsadaNoReabreElTrial(t *testing.T) {
	s := Subscription{Plan: PlanPrueba, StartDate: time.Now(), TrialUsed: true}
	s.ApplyPlan()
	assert.Nil(t, s.ExpiresAt)
	assert.Zero(t, s.ClubsMax)
}
