package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementsFor(t *testing.T) {
	tests := []struct {
		country string
		want    Requirements
	}{
		{
			country: "NA",
			want: Requirements{Country: CountryNamibia, RequiresCO2: true, RequiresRRP: true,
				VATRate: 0.15, Currency: "NAD"},
		},
		{
			country: "ZA",
			want: Requirements{Country: CountrySouthAfrica, RequiresCO2: true, RequiresRRP: true,
				RequiresNewVehicleToggle: true, VATRate: 0.15, Currency: "ZAR"},
		},
		{
			country: "BW",
			want:    Requirements{Country: CountryBotswana, RequiresRRP: true, VATRate: 0.12, Currency: "BWP"},
		},
		{
			country: "ZM",
			want:    Requirements{Country: CountryZambia, RequiresZMFields: true, VATRate: 0.16, Currency: "ZMW"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got, err := RequirementsFor(tt.country)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequirementsFor_Unsupported(t *testing.T) {
	for _, code := range []string{"MZ", "zm", ""} {
		_, err := RequirementsFor(code)
		require.ErrorIs(t, err, ErrUnsupportedCountry, "code %q", code)
	}
}

func TestEngine_RequirementsFollowConfiguredVAT(t *testing.T) {
	rates := DefaultRates()
	rates.Zambia.VATRate = 0.18

	e := newTestEngine(t, WithRates(rates))
	req, err := e.Requirements("ZM")
	require.NoError(t, err)
	assert.Equal(t, 0.18, req.VATRate)

	_, err = e.Requirements("XX")
	require.ErrorIs(t, err, ErrUnsupportedCountry)
}

func TestRequirements_DoNotAffectCalculation(t *testing.T) {
	in := baseInputs(CountryBotswana, 180000)
	in.RRP = ptr(300000)

	before, err := Calculate(in)
	require.NoError(t, err)
	for _, c := range SupportedCountries() {
		_, err := RequirementsFor(string(c))
		require.NoError(t, err)
	}
	after, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
