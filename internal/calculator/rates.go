package calculator

import (
	"errors"
	"fmt"
)

// AdValoremRates parameterises the ad valorem excise formula
//
//	rate = clamp(0, MaxRate, (Slope × RRP − Offset) / 100)
//	adv  = rate × RRP
type AdValoremRates struct {
	Slope   float64 `yaml:"slope" json:"slope"`
	Offset  float64 `yaml:"offset" json:"offset"`
	MaxRate float64 `yaml:"max_rate" json:"maxRate"`

	// DefaultRRPMultiplier derives an RRP from CIF when none is supplied.
	DefaultRRPMultiplier float64 `yaml:"default_rrp_multiplier" json:"defaultRRPMultiplier"`
}

// EmissionLevy charges RatePerGram for every g/km above ThresholdGPerKm.
type EmissionLevy struct {
	ThresholdGPerKm float64 `yaml:"threshold_g_per_km" json:"thresholdGPerKm"`
	RatePerGram     float64 `yaml:"rate_per_gram" json:"ratePerGram"`
}

// NamibiaRates holds the Namibian schedule.
type NamibiaRates struct {
	DutyRate float64 `yaml:"duty_rate" json:"dutyRate"`
	VATRate  float64 `yaml:"vat_rate" json:"vatRate"`

	// VATUplift multiplies CIF inside the VAT base.
	VATUplift float64 `yaml:"vat_uplift" json:"vatUplift"`

	PetrolLevy EmissionLevy   `yaml:"petrol_levy" json:"petrolLevy"`
	DieselLevy EmissionLevy   `yaml:"diesel_levy" json:"dieselLevy"`
	AdValorem  AdValoremRates `yaml:"ad_valorem" json:"adValorem"`
}

// SouthAfricaRates holds the South African schedule.
type SouthAfricaRates struct {
	DutyRate  float64        `yaml:"duty_rate" json:"dutyRate"`
	VATRate   float64        `yaml:"vat_rate" json:"vatRate"`
	VATUplift float64        `yaml:"vat_uplift" json:"vatUplift"`
	CO2Levy   EmissionLevy   `yaml:"co2_levy" json:"co2Levy"`
	AdValorem AdValoremRates `yaml:"ad_valorem" json:"adValorem"`
}

// BotswanaRates holds the Botswana schedule. Botswana applies no VAT uplift.
type BotswanaRates struct {
	DutyRate  float64        `yaml:"duty_rate" json:"dutyRate"`
	VATRate   float64        `yaml:"vat_rate" json:"vatRate"`
	AdValorem AdValoremRates `yaml:"ad_valorem" json:"adValorem"`
}

// ZambiaRates holds the Zambian schedule. Duty normally comes from the
// specific-duty table; FallbackDutyRate applies when no row matches.
type ZambiaRates struct {
	FallbackDutyRate float64 `yaml:"fallback_duty_rate" json:"fallbackDutyRate"`
	VATRate          float64 `yaml:"vat_rate" json:"vatRate"`

	// HybridExciseFactor scales the excise rate for hybrids.
	HybridExciseFactor float64 `yaml:"hybrid_excise_factor" json:"hybridExciseFactor"`
}

// Rates is the full rate set used by an Engine.
type Rates struct {
	Namibia     NamibiaRates     `yaml:"na" json:"na"`
	SouthAfrica SouthAfricaRates `yaml:"za" json:"za"`
	Botswana    BotswanaRates    `yaml:"bw" json:"bw"`
	Zambia      ZambiaRates      `yaml:"zm" json:"zm"`
}

func defaultAdValorem() AdValoremRates {
	return AdValoremRates{
		Slope:                0.00003,
		Offset:               0.75,
		MaxRate:              0.30,
		DefaultRRPMultiplier: 1.5,
	}
}

// DefaultRates returns the published rate set.
//
// The environmental and CO2 levy constants have no cited statutory source and
// should be checked against current NamRA and SARS schedules before use.
func DefaultRates() Rates {
	return Rates{
		Namibia: NamibiaRates{
			DutyRate:   0.25,
			VATRate:    0.15,
			VATUplift:  1.10,
			PetrolLevy: EmissionLevy{ThresholdGPerKm: 120, RatePerGram: 40},
			DieselLevy: EmissionLevy{ThresholdGPerKm: 140, RatePerGram: 45},
			AdValorem:  defaultAdValorem(),
		},
		SouthAfrica: SouthAfricaRates{
			DutyRate:  0.25,
			VATRate:   0.15,
			VATUplift: 1.10,
			CO2Levy:   EmissionLevy{ThresholdGPerKm: 120, RatePerGram: 120},
			AdValorem: defaultAdValorem(),
		},
		Botswana: BotswanaRates{
			DutyRate:  0.25,
			VATRate:   0.12,
			AdValorem: defaultAdValorem(),
		},
		Zambia: ZambiaRates{
			FallbackDutyRate:   0.25,
			VATRate:            0.16,
			HybridExciseFactor: 0.5,
		},
	}
}

// Validate reports every rate that is out of range.
func (r Rates) Validate() error {
	var errs []error
	check := func(name string, v float64, fraction bool) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
			return
		}
		if fraction && v > 1 {
			errs = append(errs, fmt.Errorf("%s must be <= 1, got %v", name, v))
		}
	}
	checkAdv := func(prefix string, a AdValoremRates) {
		check(prefix+".slope", a.Slope, false)
		check(prefix+".offset", a.Offset, false)
		check(prefix+".max_rate", a.MaxRate, true)
		check(prefix+".default_rrp_multiplier", a.DefaultRRPMultiplier, false)
	}
	checkLevy := func(prefix string, l EmissionLevy) {
		check(prefix+".threshold_g_per_km", l.ThresholdGPerKm, false)
		check(prefix+".rate_per_gram", l.RatePerGram, false)
	}

	check("na.duty_rate", r.Namibia.DutyRate, true)
	check("na.vat_rate", r.Namibia.VATRate, true)
	check("na.vat_uplift", r.Namibia.VATUplift, false)
	checkLevy("na.petrol_levy", r.Namibia.PetrolLevy)
	checkLevy("na.diesel_levy", r.Namibia.DieselLevy)
	checkAdv("na.ad_valorem", r.Namibia.AdValorem)

	check("za.duty_rate", r.SouthAfrica.DutyRate, true)
	check("za.vat_rate", r.SouthAfrica.VATRate, true)
	check("za.vat_uplift", r.SouthAfrica.VATUplift, false)
	checkLevy("za.co2_levy", r.SouthAfrica.CO2Levy)
	checkAdv("za.ad_valorem", r.SouthAfrica.AdValorem)

	check("bw.duty_rate", r.Botswana.DutyRate, true)
	check("bw.vat_rate", r.Botswana.VATRate, true)
	checkAdv("bw.ad_valorem", r.Botswana.AdValorem)

	check("zm.fallback_duty_rate", r.Zambia.FallbackDutyRate, true)
	check("zm.vat_rate", r.Zambia.VATRate, true)
	check("zm.hybrid_excise_factor", r.Zambia.HybridExciseFactor, true)

	return errors.Join(errs...)
}

// adValorem applies the ad valorem excise formula to rrp.
func adValorem(a AdValoremRates, rrp float64) float64 {
	rate := (a.Slope*rrp - a.Offset) / 100
	rate = max(0, min(a.MaxRate, rate))
	return rate * rrp
}

// resolveRRP returns the supplied RRP or the CIF-derived default.
func resolveRRP(in Inputs, a AdValoremRates) float64 {
	if in.RRP != nil {
		return *in.RRP
	}
	return in.CIF * a.DefaultRRPMultiplier
}

// levy charges l.RatePerGram for each g/km of co2 above the threshold.
func levy(l EmissionLevy, co2 float64) float64 {
	return max(0, co2-l.ThresholdGPerKm) * l.RatePerGram
}
