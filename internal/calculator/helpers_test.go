package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moneyDelta absorbs binary floating point error in decimal rates.
const moneyDelta = 1e-6

func ptr(v float64) *float64 {
	return &v
}

func assertMoney(t *testing.T, want, got float64, field string) {
	t.Helper()
	assert.InDelta(t, want, got, moneyDelta, "%s: want %v, got %v", field, want, got)
}

// assertSums checks that TotalTaxes and LandedCost are exact sums of their parts.
func assertSums(t *testing.T, out *FullOutput) {
	t.Helper()
	require.NotNil(t, out)
	assert.Equal(t, out.Duty+out.Env+out.Adv+out.Excise+out.CO2Levy+out.VAT, out.TotalTaxes,
		"totalTaxes must equal the sum of its components")
	assert.Equal(t,
		out.CIF+out.TotalTaxes+out.JapanSideCosts+out.LocalClearingShare+out.InlandDelivery,
		out.LandedCost, "landedCost must equal cif + taxes + logistics")
}

func assertNonNegative(t *testing.T, out *FullOutput) {
	t.Helper()
	for name, v := range map[string]float64{
		"duty":               out.Duty,
		"env":                out.Env,
		"adv":                out.Adv,
		"excise":             out.Excise,
		"co2Levy":            out.CO2Levy,
		"vat":                out.VAT,
		"totalTaxes":         out.TotalTaxes,
		"localClearingShare": out.LocalClearingShare,
		"landedCost":         out.LandedCost,
	} {
		assert.GreaterOrEqual(t, v, 0.0, "%s must be non-negative", name)
	}
}

// baseInputs returns a valid single-car import with no logistics costs.
func baseInputs(c Country, cif float64) Inputs {
	return Inputs{
		Country:       c,
		CIF:           cif,
		Fuel:          FuelPetrol,
		ContainerCars: 1,
	}
}
