package calculator

// NamibiaCalculator implements the Namibian schedule.
type NamibiaCalculator struct {
	rates NamibiaRates
}

// NewNamibiaCalculator creates a calculator for the given rates.
func NewNamibiaCalculator(rates NamibiaRates) *NamibiaCalculator {
	return &NamibiaCalculator{rates: rates}
}

// Country returns CountryNamibia.
func (c *NamibiaCalculator) Country() Country {
	return CountryNamibia
}

// Calculate computes the Namibian breakdown:
//
//	duty = DutyRate × CIF
//	env  = fuel levy on CO2 above the petrol or diesel threshold
//	adv  = ad valorem excise on RRP
//	vat  = VATRate × (CIF × VATUplift + duty + adv)
//
// The environmental levy is not part of the VAT base.
func (c *NamibiaCalculator) Calculate(in Inputs) (*FullOutput, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}
	r := c.rates

	duty := r.DutyRate * in.CIF

	var env float64
	switch fuelOrDefault(in.Fuel) {
	case FuelDiesel:
		env = levy(r.DieselLevy, in.CO2)
	default:
		env = levy(r.PetrolLevy, in.CO2)
	}

	adv := adValorem(r.AdValorem, resolveRRP(in, r.AdValorem))
	vat := r.VATRate * (in.CIF*r.VATUplift + duty + adv)

	tax := TaxOutput{
		Duty: duty,
		Env:  env,
		Adv:  adv,
		VAT:  vat,
	}.withTotal()

	return finish(CountryNamibia, tax, in, nil)
}
