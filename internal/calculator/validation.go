package calculator

import (
	"fmt"
	"math"
)

type amountField struct {
	field string
	value float64
}

// validateInputs checks the fields shared by every country. It runs before any
// arithmetic so the formulas can assume finite, non-negative amounts.
func validateInputs(in Inputs) error {
	amounts := []amountField{
		{"cif", in.CIF},
		{"co2", in.CO2},
		{"japanSideCosts", in.JapanSideCosts},
		{"localClearingCosts", in.LocalClearingCosts},
		{"inlandDelivery", in.InlandDelivery},
	}
	if in.RRP != nil {
		amounts = append(amounts, amountField{"rrp", *in.RRP})
	}
	for _, a := range amounts {
		if err := nonNegative(a.field, a.value); err != nil {
			return err
		}
	}

	if in.ContainerCars < 1 {
		return invalid("containerCars", fmt.Sprintf("must be at least 1, got %d", in.ContainerCars))
	}

	switch in.Fuel {
	case "", FuelPetrol, FuelDiesel:
	default:
		return invalid("fuel", fmt.Sprintf("must be %q or %q, got %q", FuelPetrol, FuelDiesel, in.Fuel))
	}
	return nil
}

// validateZambia checks the Zambia-only sub-record.
func validateZambia(in Inputs) error {
	if in.ZM == nil {
		return invalid("zm", "is required for Zambia")
	}
	if in.ZM.CC < 0 {
		return invalid("zm.cc", fmt.Sprintf("must be >= 0, got %d", in.ZM.CC))
	}
	if in.ZM.AgeYears < 0 {
		return invalid("zm.ageYears", fmt.Sprintf("must be >= 0, got %d", in.ZM.AgeYears))
	}
	return nonNegative("zm.exciseRate", in.ZM.ExciseRate)
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, fmt.Sprintf("must be >= 0, got %v", v))
	}
	return nil
}

// fuelOrDefault returns the fuel type, treating an empty value as petrol.
func fuelOrDefault(f Fuel) Fuel {
	if f == "" {
		return FuelPetrol
	}
	return f
}
