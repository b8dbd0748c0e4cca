package calculator

// Requirements tells a form which optional inputs a country uses.
// It has no effect on calculation.
type Requirements struct {
	Country                  Country `json:"country"`
	RequiresCO2              bool    `json:"requiresCO2"`
	RequiresRRP              bool    `json:"requiresRRP"`
	RequiresZMFields         bool    `json:"requiresZMFields"`
	RequiresNewVehicleToggle bool    `json:"requiresNewVehicleToggle"`
	VATRate                  float64 `json:"vatRate"`
	Currency                 string  `json:"currency"`
}

// RequirementsFor returns the form metadata for a country under DefaultRates.
func RequirementsFor(code string) (Requirements, error) {
	c, err := ParseCountry(code)
	if err != nil {
		return Requirements{}, err
	}
	return requirementsFor(c, DefaultRates()), nil
}

func requirementsFor(c Country, r Rates) Requirements {
	req := Requirements{Country: c, Currency: CurrencyFor(c)}
	switch c {
	case CountryNamibia:
		req.RequiresCO2 = true
		req.RequiresRRP = true
		req.VATRate = r.Namibia.VATRate
	case CountrySouthAfrica:
		req.RequiresCO2 = true
		req.RequiresRRP = true
		req.RequiresNewVehicleToggle = true
		req.VATRate = r.SouthAfrica.VATRate
	case CountryBotswana:
		req.RequiresRRP = true
		req.VATRate = r.Botswana.VATRate
	case CountryZambia:
		req.RequiresZMFields = true
		req.VATRate = r.Zambia.VATRate
	}
	return req
}
