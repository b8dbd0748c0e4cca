package calculator

// BotswanaCalculator implements the Botswana schedule.
type BotswanaCalculator struct {
	rates BotswanaRates
}

// NewBotswanaCalculator creates a calculator for the given rates.
func NewBotswanaCalculator(rates BotswanaRates) *BotswanaCalculator {
	return &BotswanaCalculator{rates: rates}
}

// Country returns CountryBotswana.
func (c *BotswanaCalculator) Country() Country {
	return CountryBotswana
}

// Calculate computes the Botswana breakdown. Unlike Namibia and South Africa,
// the VAT base is CIF + duty + adv with no uplift on CIF, and there is no
// emissions levy.
func (c *BotswanaCalculator) Calculate(in Inputs) (*FullOutput, error) {
	if err := validateInputs(in); err != nil {
		return nil, err
	}
	r := c.rates

	duty := r.DutyRate * in.CIF
	adv := adValorem(r.AdValorem, resolveRRP(in, r.AdValorem))
	vat := r.VATRate * (in.CIF + duty + adv)

	tax := TaxOutput{
		Duty: duty,
		Adv:  adv,
		VAT:  vat,
	}.withTotal()

	return finish(CountryBotswana, tax, in, nil)
}
