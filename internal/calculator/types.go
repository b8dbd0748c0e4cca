// Package calculator estimates import duties, levies, VAT and total landed cost
// for vehicles imported into Namibia, South Africa, Botswana and Zambia.
//
// Every calculation is a pure function of its Inputs, the configured Rates and
// the read-only Zambian specific-duty table. Results are not rounded; callers
// format amounts for display.
package calculator

// Country is an ISO 3166-1 alpha-2 code of a supported destination.
type Country string

// Supported destinations.
const (
	CountryNamibia     Country = "NA"
	CountrySouthAfrica Country = "ZA"
	CountryBotswana    Country = "BW"
	CountryZambia      Country = "ZM"
)

// Fuel is the vehicle fuel type.
type Fuel string

// Supported fuel types. An empty Fuel is treated as FuelPetrol.
const (
	FuelPetrol Fuel = "petrol"
	FuelDiesel Fuel = "diesel"
)

// Inputs describes one vehicle import. All amounts are in the destination currency.
type Inputs struct {
	// Country selects the tax regime.
	Country Country `json:"country"`

	// CIF is the customs value (cost, insurance and freight).
	CIF float64 `json:"cif"`

	// Fuel affects the Namibian environmental levy.
	Fuel Fuel `json:"fuel,omitempty"`

	// CO2 is the emission rating in g/km. Zero when unknown.
	CO2 float64 `json:"co2,omitempty"`

	// RRP is the retail reference price used for ad valorem excise.
	// When nil it defaults to CIF times the country's RRP multiplier.
	RRP *float64 `json:"rrp,omitempty"`

	// IsNewVehicle gates the South African CO2 levy. False means a used import.
	IsNewVehicle bool `json:"isNewVehicle,omitempty"`

	// ContainerCars is the number of vehicles sharing one container. Must be >= 1.
	ContainerCars int `json:"containerCars"`

	// JapanSideCosts covers export-side charges (auction fees, inland transport, shipping agent).
	JapanSideCosts float64 `json:"japanSideCosts"`

	// LocalClearingCosts is the whole container's clearing cost, split evenly across ContainerCars.
	LocalClearingCosts float64 `json:"localClearingCosts"`

	// InlandDelivery is the cost of moving the vehicle from port to the buyer.
	InlandDelivery float64 `json:"inlandDelivery"`

	// ZM carries the Zambia-only attributes. Required when Country is ZM.
	ZM *ZambiaDetails `json:"zm,omitempty"`
}

// ZambiaDetails holds the attributes used by the Zambian duty table and excise.
type ZambiaDetails struct {
	// Type is the specific-duty vehicle category (e.g. "sedan", "suv").
	Type string `json:"type"`

	// CC is the engine capacity in cubic centimetres.
	CC int `json:"cc"`

	// AgeYears is the vehicle age in whole years.
	AgeYears int `json:"ageYears"`

	// ExciseRate is the standard excise rate in percent (e.g. 20 for 20%).
	ExciseRate float64 `json:"exciseRate"`

	// IsEV marks a fully electric vehicle.
	IsEV bool `json:"isEV,omitempty"`

	// IsHybrid marks a hybrid vehicle.
	IsHybrid bool `json:"isHybrid,omitempty"`
}

// TaxOutput is the tax portion of a calculation. Components that do not apply
// to a country are always present and zero.
type TaxOutput struct {
	// Duty is customs duty.
	Duty float64 `json:"duty"`

	// Env is the Namibian environmental levy.
	Env float64 `json:"env"`

	// Adv is ad valorem excise (NA, ZA, BW).
	Adv float64 `json:"adv"`

	// Excise is Zambian excise duty.
	Excise float64 `json:"excise"`

	// CO2Levy is the South African new-vehicle CO2 levy.
	CO2Levy float64 `json:"co2Levy"`

	// VAT is value added tax.
	VAT float64 `json:"vat"`

	// TotalTaxes is the sum of the components above.
	TotalTaxes float64 `json:"totalTaxes"`
}

// withTotal returns t with TotalTaxes set to the sum of its components.
// Non-applicable components are zero, so adding them is exact.
func (t TaxOutput) withTotal() TaxOutput {
	t.TotalTaxes = t.Duty + t.Env + t.Adv + t.Excise + t.CO2Levy + t.VAT
	return t
}

// FullOutput is a complete landed-cost breakdown.
type FullOutput struct {
	TaxOutput

	// Country is the destination the breakdown was computed for.
	Country Country `json:"country"`

	// Currency is the ISO 4217 code of every amount in the breakdown.
	Currency string `json:"currency"`

	CIF                float64 `json:"cif"`
	JapanSideCosts     float64 `json:"japanSideCosts"`
	LocalClearingShare float64 `json:"localClearingShare"`
	InlandDelivery     float64 `json:"inlandDelivery"`

	// LandedCost is CIF + TotalTaxes + JapanSideCosts + LocalClearingShare + InlandDelivery.
	LandedCost float64 `json:"landedCost"`

	// DutyFallback is true when Zambian duty was estimated because no
	// specific-duty row matched the vehicle.
	DutyFallback bool `json:"dutyFallback"`

	// BreakdownNotes are ordered, human-readable advisories.
	BreakdownNotes []string `json:"breakdownNotes"`
}

// Calculator computes a landed-cost breakdown for one country.
// Implementations are stateless and safe for concurrent use.
type Calculator interface {
	// Country returns the destination this calculator implements.
	Country() Country

	// Calculate validates in and returns its breakdown.
	Calculate(in Inputs) (*FullOutput, error)
}
