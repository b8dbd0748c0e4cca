package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tax := TaxOutput{Duty: 100, VAT: 50}.withTotal()

	tests := []struct {
		name          string
		containerCars int
		clearing      float64
		wantShare     float64
		wantLanded    float64
	}{
		{name: "single car pays full clearing", containerCars: 1, clearing: 4000, wantShare: 4000, wantLanded: 1000 + 150 + 300 + 4000 + 200},
		{name: "four cars split clearing", containerCars: 4, clearing: 4000, wantShare: 1000, wantLanded: 1000 + 150 + 300 + 1000 + 200},
		{name: "uneven split is not rounded", containerCars: 3, clearing: 1000, wantShare: 1000.0 / 3, wantLanded: 1000 + 150 + 300 + 1000.0/3 + 200},
		{name: "no clearing cost", containerCars: 2, clearing: 0, wantShare: 0, wantLanded: 1650},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Inputs{
				CIF:                1000,
				ContainerCars:      tt.containerCars,
				JapanSideCosts:     300,
				LocalClearingCosts: tt.clearing,
				InlandDelivery:     200,
			}

			out, err := Aggregate(tax, in, []string{"a", "b"})
			require.NoError(t, err)

			assert.Equal(t, tt.wantShare, out.LocalClearingShare)
			assertMoney(t, tt.wantLanded, out.LandedCost, "landedCost")
			assert.Equal(t, tax, out.TaxOutput)
			assert.Equal(t, []string{"a", "b"}, out.BreakdownNotes)
			assertSums(t, out)
		})
	}
}

func TestAggregate_RejectsEmptyContainer(t *testing.T) {
	for _, cars := range []int{0, -1} {
		out, err := Aggregate(TaxOutput{}, Inputs{CIF: 1000, ContainerCars: cars, LocalClearingCosts: 500}, nil)
		require.Error(t, err)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestAggregate_NotesNeverNil(t *testing.T) {
	out, err := Aggregate(TaxOutput{}, Inputs{ContainerCars: 1}, nil)
	require.NoError(t, err)
	assert.NotNil(t, out.BreakdownNotes)
	assert.Empty(t, out.BreakdownNotes)
}

func TestAggregate_DoesNotAliasNotes(t *testing.T) {
	notes := []string{"first"}
	out, err := Aggregate(TaxOutput{}, Inputs{ContainerCars: 1}, notes)
	require.NoError(t, err)

	notes[0] = "changed"
	assert.Equal(t, []string{"first"}, out.BreakdownNotes)
}
