package calculator

// Advisory notes. Their text is user facing and matched verbatim by callers.
const (
	// ITACPermitNote is attached to every South African used-vehicle calculation.
	ITACPermitNote = "Used vehicle imports into South Africa require an ITAC import permit issued before shipment; vehicles arriving without one may be detained or refused entry."

	// ElectricVehicleNote is attached to Zambian calculations for electric vehicles.
	ElectricVehicleNote = "Electric vehicle: customs duty is waived and excise is reduced to zero under Zambia's electric vehicle incentive."

	// HybridVehicleNoteTemplate is attached to Zambian calculations for hybrid vehicles.
	// Use with fmt.Sprintf: the hybrid excise factor in percent.
	HybridVehicleNoteTemplate = "Hybrid vehicle: excise is charged at %s%% of the standard rate."

	// DutyFallbackNoteTemplate is used when no Zambian specific-duty row matches.
	// Use with fmt.Sprintf: vehicle type, cc, age in years, fallback rate in percent.
	DutyFallbackNoteTemplate = "No specific duty rate is scheduled for %q at %dcc aged %d years; duty estimated at %s%% of CIF. Confirm with ZRA before relying on this figure."
)

// currencies maps each destination to its ISO 4217 currency code.
var currencies = map[Country]string{
	CountryNamibia:     "NAD",
	CountrySouthAfrica: "ZAR",
	CountryBotswana:    "BWP",
	CountryZambia:      "ZMW",
}

// CurrencyFor returns the currency of a supported country, or "" otherwise.
func CurrencyFor(c Country) string {
	return currencies[c]
}

// SupportedCountries returns the supported destinations in a fixed order.
func SupportedCountries() []Country {
	return []Country{CountryNamibia, CountrySouthAfrica, CountryBotswana, CountryZambia}
}
