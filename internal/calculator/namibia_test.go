package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamibia_EndToEndScenario(t *testing.T) {
	calc := NewNamibiaCalculator(DefaultRates().Namibia)

	out, err := calc.Calculate(Inputs{
		Country:            CountryNamibia,
		CIF:                150000,
		Fuel:               FuelPetrol,
		CO2:                150,
		RRP:                ptr(250000),
		ContainerCars:      1,
		JapanSideCosts:     20000,
		LocalClearingCosts: 26255.65,
		InlandDelivery:     5000,
	})
	require.NoError(t, err)

	assertMoney(t, 37500, out.Duty, "duty")
	assertMoney(t, 1200, out.Env, "env")
	assertMoney(t, 16875, out.Adv, "adv")
	assertMoney(t, 32906.25, out.VAT, "vat")
	assertMoney(t, 88481.25, out.TotalTaxes, "totalTaxes")
	assertMoney(t, 289736.90, out.LandedCost, "landedCost")
	assertMoney(t, 26255.65, out.LocalClearingShare, "localClearingShare")

	assert.Zero(t, out.Excise)
	assert.Zero(t, out.CO2Levy)
	assert.Equal(t, CountryNamibia, out.Country)
	assert.Equal(t, "NAD", out.Currency)
	assert.Empty(t, out.BreakdownNotes)
	assertSums(t, out)
}

func TestNamibia_EnvironmentalLevy(t *testing.T) {
	calc := NewNamibiaCalculator(DefaultRates().Namibia)

	tests := []struct {
		name    string
		fuel    Fuel
		co2     float64
		wantEnv float64
	}{
		{name: "petrol below threshold", fuel: FuelPetrol, co2: 100, wantEnv: 0},
		{name: "petrol at threshold", fuel: FuelPetrol, co2: 120, wantEnv: 0},
		{name: "petrol above threshold", fuel: FuelPetrol, co2: 150, wantEnv: 1200},
		{name: "empty fuel treated as petrol", fuel: "", co2: 150, wantEnv: 1200},
		{name: "diesel at petrol threshold", fuel: FuelDiesel, co2: 130, wantEnv: 0},
		{name: "diesel at threshold", fuel: FuelDiesel, co2: 140, wantEnv: 0},
		{name: "diesel above threshold", fuel: FuelDiesel, co2: 150, wantEnv: 450},
		{name: "no co2 rating", fuel: FuelDiesel, co2: 0, wantEnv: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInputs(CountryNamibia, 100000)
			in.Fuel = tt.fuel
			in.CO2 = tt.co2

			out, err := calc.Calculate(in)
			require.NoError(t, err)
			assertMoney(t, tt.wantEnv, out.Env, "env")
			assertSums(t, out)
		})
	}
}

func TestNamibia_AdValoremClamp(t *testing.T) {
	calc := NewNamibiaCalculator(DefaultRates().Namibia)

	tests := []struct {
		name    string
		cif     float64
		rrp     *float64
		wantAdv float64
	}{
		{name: "reference rrp", cif: 150000, rrp: ptr(250000), wantAdv: 16875},
		{name: "low rrp clamps rate to zero", cif: 10000, rrp: ptr(20000), wantAdv: 0},
		{name: "rate exactly zero", cif: 10000, rrp: ptr(25000), wantAdv: 0},
		{name: "explicit zero rrp", cif: 10000, rrp: ptr(0), wantAdv: 0},
		{name: "high rrp clamps rate to 30 percent", cif: 1000000, rrp: ptr(2000000), wantAdv: 600000},
		{name: "rrp defaults to 1.5 x cif", cif: 100000, rrp: nil, wantAdv: 5625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInputs(CountryNamibia, tt.cif)
			in.RRP = tt.rrp

			out, err := calc.Calculate(in)
			require.NoError(t, err)
			assertMoney(t, tt.wantAdv, out.Adv, "adv")

			rrp := tt.cif * 1.5
			if tt.rrp != nil {
				rrp = *tt.rrp
			}
			if rrp > 0 {
				rate := out.Adv / rrp
				assert.GreaterOrEqual(t, rate, 0.0)
				assert.LessOrEqual(t, rate, 0.30+1e-12)
			}
		})
	}
}

func TestNamibia_VATBaseExcludesEnvironmentalLevy(t *testing.T) {
	calc := NewNamibiaCalculator(DefaultRates().Namibia)

	clean := baseInputs(CountryNamibia, 150000)
	clean.RRP = ptr(250000)
	clean.CO2 = 100

	dirty := clean
	dirty.CO2 = 200

	cleanOut, err := calc.Calculate(clean)
	require.NoError(t, err)
	dirtyOut, err := calc.Calculate(dirty)
	require.NoError(t, err)

	assert.Zero(t, cleanOut.Env)
	assertMoney(t, 3200, dirtyOut.Env, "env")
	assert.Equal(t, cleanOut.VAT, dirtyOut.VAT, "env levy must not enter the VAT base")
	// (150000 × 1.10 + 37500 + 16875) × 0.15
	assertMoney(t, 32906.25, dirtyOut.VAT, "vat")
}

func TestNamibia_CustomRates(t *testing.T) {
	rates := DefaultRates().Namibia
	rates.PetrolLevy.RatePerGram = 50
	rates.DutyRate = 0.20

	out, err := NewNamibiaCalculator(rates).Calculate(Inputs{
		CIF:           100000,
		CO2:           130,
		RRP:           ptr(0),
		ContainerCars: 1,
	})
	require.NoError(t, err)

	assertMoney(t, 20000, out.Duty, "duty")
	assertMoney(t, 500, out.Env, "env")
	assertSums(t, out)
}
