package calculator

import "fmt"

// Aggregate folds the logistics costs of in into tax and returns the full
// breakdown with notes attached in order. No rounding is applied.
//
// ContainerCars must be at least 1; a smaller value is reported as an
// InvalidInputError instead of dividing by zero.
func Aggregate(tax TaxOutput, in Inputs, notes []string) (*FullOutput, error) {
	if in.ContainerCars < 1 {
		return nil, invalid("containerCars", fmt.Sprintf("must be at least 1, got %d", in.ContainerCars))
	}

	share := in.LocalClearingCosts / float64(in.ContainerCars)

	out := &FullOutput{
		TaxOutput:          tax,
		CIF:                in.CIF,
		JapanSideCosts:     in.JapanSideCosts,
		LocalClearingShare: share,
		InlandDelivery:     in.InlandDelivery,
		LandedCost:         in.CIF + tax.TotalTaxes + in.JapanSideCosts + share + in.InlandDelivery,
		BreakdownNotes:     make([]string, 0, len(notes)),
	}
	out.BreakdownNotes = append(out.BreakdownNotes, notes...)
	return out, nil
}

// finish aggregates tax for country c and stamps the country and currency.
func finish(c Country, tax TaxOutput, in Inputs, notes []string) (*FullOutput, error) {
	out, err := Aggregate(tax, in, notes)
	if err != nil {
		return nil, err
	}
	out.Country = c
	out.Currency = CurrencyFor(c)
	return out, nil
}
