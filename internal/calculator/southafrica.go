package calculator

// SouthAfricaCalculator implements the South African schedule.
type SouthAfricaCalculator struct {
	rates SouthAfricaRates
}

// NewSouthAfricaCalculator creates a calculator for the given rates.
func NewSouthAfricaCalculator(rates SouthAfricaRates) *SouthAfricaCalculator {
	return &SouthAfricaCalculator{rates: rates}
}

// Country returns CountrySouthAfrica.
func (c *SouthAfricaCalculator) Country() Country {
	return CountrySouthAfrica
}

// Calculate computes the South African breakdown. The CO2 levy applies only to
// new vehicles and is included in the VAT base; used vehicles get the ITAC
// permit advisory instead.
func (c *SouthAfricaCalculator) Calculate(in Inputs) (*FullOutput, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}
	r := c.rates

	duty := r.DutyRate * in.CIF
	adv := adValorem(r.AdValorem, resolveRRP(in, r.AdValorem))

	var co2Levy float64
	var notes []string
	if in.IsNewVehicle {
		co2Levy = levy(r.CO2Levy, in.CO2)
	} else {
		notes = append(notes, ITACPermitNote)
	}

	vat := r.VATRate * (in.CIF*r.VATUplift + duty + adv + co2Levy)

	tax := TaxOutput{
		Duty:    duty,
		Adv:     adv,
		CO2Levy: co2Levy,
		VAT:     vat,
	}.withTotal()

	return finish(CountrySouthAfrica, tax, in, notes)
}
