package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatus(t *testing.T) {
	cases := []struct {
		name    string
		current int
		ideal   int
		want    Status
	}{
		{"cero es crítico", 0, 5, StatusCritical},
		{"negativo es crítico", -1, 5, StatusCritical},
		{"por debajo del ideal es bajo", 3, 5, StatusLow},
		{"uno por debajo del ideal es bajo", 4, 5, StatusLow},
		{"exactamente el ideal es normal", 5, 5, StatusNormal},
		{"por encima del ideal es normal", 12, 5, StatusNormal},
		{"ideal uno: saldo uno es normal", 1, 1, StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeStatus(tc.current, tc.ideal))
		})
	}
}
