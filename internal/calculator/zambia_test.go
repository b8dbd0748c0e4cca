package calculator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/landedcost/internal/dutytable"
)

func zambiaInputs(cif float64, zm ZambiaDetails) Inputs {
	in := baseInputs(CountryZambia, cif)
	in.ZM = &zm
	return in
}

func TestZambia_TableDuty(t *testing.T) {
	calc := NewZambiaCalculator(DefaultRates().Zambia, dutytable.Default())

	out, err := calc.Calculate(zambiaInputs(100000, ZambiaDetails{
		Type:       "sedan",
		CC:         1500,
		AgeYears:   3,
		ExciseRate: 20,
	}))
	require.NoError(t, err)

	assertMoney(t, 15610, out.Duty, "duty")
	// (100000 + 15610) × 20%
	assertMoney(t, 23122, out.Excise, "excise")
	// 16% × (100000 + 15610 + 23122)
	assertMoney(t, 22197.12, out.VAT, "vat")
	assertMoney(t, 60929.12, out.TotalTaxes, "totalTaxes")
	assert.Zero(t, out.Adv)
	assert.Zero(t, out.Env)
	assert.Zero(t, out.CO2Levy)
	assert.False(t, out.DutyFallback)
	assert.Empty(t, out.BreakdownNotes)
	assert.Equal(t, "ZMW", out.Currency)
	assertSums(t, out)
}

func TestZambia_ElectricVehicle(t *testing.T) {
	calc := NewZambiaCalculator(DefaultRates().Zambia, dutytable.Default())

	tests := []struct {
		name string
		zm   ZambiaDetails
	}{
		{name: "type with a table row", zm: ZambiaDetails{Type: "sedan", CC: 1500, AgeYears: 3, ExciseRate: 20, IsEV: true}},
		{name: "type without a table row", zm: ZambiaDetails{Type: "roadster", CC: 0, AgeYears: 0, ExciseRate: 20, IsEV: true}},
		{name: "ev wins over hybrid", zm: ZambiaDetails{Type: "suv", CC: 2000, AgeYears: 4, ExciseRate: 30, IsEV: true, IsHybrid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := calc.Calculate(zambiaInputs(100000, tt.zm))
			require.NoError(t, err)

			assert.Zero(t, out.Duty)
			assert.Zero(t, out.Excise)
			assertMoney(t, 16000, out.VAT, "vat")
			assert.False(t, out.DutyFallback, "ev duty is not a fallback estimate")
			assert.Equal(t, []string{ElectricVehicleNote}, out.BreakdownNotes)
			assertSums(t, out)
		})
	}
}

func TestZambia_ElectricVehicleSkipsTable(t *testing.T) {
	// A nil table would force the fallback if it were consulted.
	calc := NewZambiaCalculator(DefaultRates().Zambia, nil)

	out, err := calc.Calculate(zambiaInputs(80000, ZambiaDetails{Type: "sedan", CC: 1200, AgeYears: 3, IsEV: true}))
	require.NoError(t, err)
	assert.Zero(t, out.Duty)
	assert.False(t, out.DutyFallback)
}

func TestZambia_HybridHalvesExcise(t *testing.T) {
	calc := NewZambiaCalculator(DefaultRates().Zambia, dutytable.Default())
	zm := ZambiaDetails{Type: "sedan", CC: 1500, AgeYears: 3, ExciseRate: 20}

	standard, err := calc.Calculate(zambiaInputs(100000, zm))
	require.NoError(t, err)

	zm.IsHybrid = true
	hybrid, err := calc.Calculate(zambiaInputs(100000, zm))
	require.NoError(t, err)

	assert.Equal(t, standard.Duty, hybrid.Duty)
	assertMoney(t, standard.Excise/2, hybrid.Excise, "excise")
	assertMoney(t, 11561, hybrid.Excise, "excise")
	// 16% × (100000 + 15610 + 11561)
	assertMoney(t, 20347.36, hybrid.VAT, "vat")
	assert.Equal(t, []string{"Hybrid vehicle: excise is charged at 50% of the standard rate."}, hybrid.BreakdownNotes)
	assertSums(t, hybrid)
}

func TestZambia_FallbackDuty(t *testing.T) {
	calc := NewZambiaCalculator(DefaultRates().Zambia, dutytable.Default())

	tests := []struct {
		name string
		zm   ZambiaDetails
	}{
		{name: "too new for the schedule", zm: ZambiaDetails{Type: "sedan", CC: 1500, AgeYears: 1, ExciseRate: 20}},
		{name: "engine outside scheduled range", zm: ZambiaDetails{Type: "hatchback", CC: 2800, AgeYears: 4, ExciseRate: 20}},
		{name: "unknown type", zm: ZambiaDetails{Type: "tractor", CC: 1500, AgeYears: 4, ExciseRate: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := calc.Calculate(zambiaInputs(100000, tt.zm))
			require.NoError(t, err)

			assertMoney(t, 25000, out.Duty, "duty")
			assertMoney(t, 25000, out.Excise, "excise")
			assertMoney(t, 24000, out.VAT, "vat")
			assert.True(t, out.DutyFallback)
			require.Len(t, out.BreakdownNotes, 1)
			assert.Contains(t, out.BreakdownNotes[0], "25% of CIF")
			assert.Contains(t, out.BreakdownNotes[0], tt.zm.Type)
			assertSums(t, out)
		})
	}
}

func TestZambia_FallbackWithHybrid(t *testing.T) {
	calc := NewZambiaCalculator(DefaultRates().Zambia, dutytable.Default())

	out, err := calc.Calculate(zambiaInputs(100000, ZambiaDetails{Type: "tractor", ExciseRate: 20, IsHybrid: true}))
	require.NoError(t, err)

	require.Len(t, out.BreakdownNotes, 2)
	assert.Contains(t, out.BreakdownNotes[0], "No specific duty rate")
	assert.Equal(t, fmt.Sprintf(HybridVehicleNoteTemplate, "50"), out.BreakdownNotes[1])
	assertMoney(t, 12500, out.Excise, "excise")
}

func TestZambia_HybridNoteFollowsConfiguredFactor(t *testing.T) {
	rates := DefaultRates().Zambia
	rates.HybridExciseFactor = 0.25
	calc := NewZambiaCalculator(rates, dutytable.Default())

	out, err := calc.Calculate(zambiaInputs(100000, ZambiaDetails{
		Type: "sedan", CC: 1500, AgeYears: 3, ExciseRate: 20, IsHybrid: true,
	}))
	require.NoError(t, err)

	// 20% × 0.25 × (100000 + 15610)
	assertMoney(t, 5780.5, out.Excise, "excise")
	assert.Equal(t, []string{"Hybrid vehicle: excise is charged at 25% of the standard rate."}, out.BreakdownNotes)
}

func TestZambia_CustomTable(t *testing.T) {
	table := dutytable.New([]dutytable.Row{
		{Type: "sedan", CCMin: 0, CCMax: 5000, AgeMin: 0, AgeMax: 50, DutyZMW: 1000},
	}, "test")
	calc := NewZambiaCalculator(DefaultRates().Zambia, table)

	out, err := calc.Calculate(zambiaInputs(50000, ZambiaDetails{Type: "sedan", CC: 1300, AgeYears: 0}))
	require.NoError(t, err)
	assertMoney(t, 1000, out.Duty, "duty")
	assert.Zero(t, out.Excise)
	assertMoney(t, 0.16*51000, out.VAT, "vat")
}

func TestZambia_Validation(t *testing.T) {
	calc := NewZambiaCalculator(DefaultRates().Zambia, dutytable.Default())

	tests := []struct {
		name      string
		in        Inputs
		wantField string
	}{
		{name: "missing zm record", in: baseInputs(CountryZambia, 100000), wantField: "zm"},
		{name: "negative cc", in: zambiaInputs(100000, ZambiaDetails{Type: "sedan", CC: -1}), wantField: "zm.cc"},
		{name: "negative age", in: zambiaInputs(100000, ZambiaDetails{Type: "sedan", AgeYears: -2}), wantField: "zm.ageYears"},
		{name: "negative excise", in: zambiaInputs(100000, ZambiaDetails{Type: "sedan", ExciseRate: -5}), wantField: "zm.exciseRate"},
		{name: "negative cif", in: zambiaInputs(-1, ZambiaDetails{Type: "sedan"}), wantField: "cif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := calc.Calculate(tt.in)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantField, inputErr.Field)
		})
	}
}
