package calculator

import (
	"fmt"
	"strconv"

	"github.com/rshade/landedcost/internal/dutytable"
)

// ZambiaCalculator implements the Zambian schedule: specific duty from a
// lookup table, excise on CIF + duty and VAT without uplift.
type ZambiaCalculator struct {
	rates ZambiaRates
	table *dutytable.Table
}

// NewZambiaCalculator creates a calculator using the given rates and table.
// A nil table behaves as an empty one, so duty always takes the fallback.
func NewZambiaCalculator(rates ZambiaRates, table *dutytable.Table) *ZambiaCalculator {
	return &ZambiaCalculator{rates: rates, table: table}
}

// Country returns CountryZambia.
func (c *ZambiaCalculator) Country() Country {
	return CountryZambia
}

// Calculate computes the Zambian breakdown.
//
// Electric vehicles pay no duty and no excise and the table is not consulted.
// Hybrids pay excise at HybridExciseFactor of the standard rate. When no table
// row matches, duty falls back to FallbackDutyRate × CIF and the output is
// flagged with DutyFallback.
func (c *ZambiaCalculator) Calculate(in Inputs) (*FullOutput, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}
	if err := validateZambia(in); err != nil {
		return nil, err
	}
	r := c.rates
	zm := in.ZM

	var (
		duty     float64
		excise   float64
		fallback bool
		notes    []string
	)

	if zm.IsEV {
		notes = append(notes, ElectricVehicleNote)
	} else {
		if row, ok := c.table.Lookup(zm.Type, zm.CC, zm.AgeYears); ok {
			duty = row.DutyZMW
		} else {
			duty = r.FallbackDutyRate * in.CIF
			fallback = true
			notes = append(notes, fmt.Sprintf(DutyFallbackNoteTemplate,
				zm.Type, zm.CC, zm.AgeYears, formatPercent(r.FallbackDutyRate)))
		}

		exciseRate := zm.ExciseRate
		if zm.IsHybrid {
			exciseRate *= r.HybridExciseFactor
			notes = append(notes, fmt.Sprintf(HybridVehicleNoteTemplate, formatPercent(r.HybridExciseFactor)))
		}
		excise = (in.CIF + duty) * exciseRate / 100
	}

	vat := r.VATRate * (in.CIF + duty + excise)

	tax := TaxOutput{
		Duty:   duty,
		Excise: excise,
		VAT:    vat,
	}.withTotal()

	out, err := finish(CountryZambia, tax, in, notes)
	if err != nil {
		return nil, err
	}
	out.DutyFallback = fallback
	return out, nil
}

// formatPercent renders a fractional rate as a percentage without trailing zeros.
func formatPercent(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', -1, 64)
}
