package calculator

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/landedcost/internal/dutytable"
)

// Engine dispatches calculations to the per-country calculators.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	calculators map[Country]Calculator
	rates       Rates
	table       *dutytable.Table
	logger      zerolog.Logger // logger is immutable (copy-on-write)
}

type engineOptions struct {
	rates  Rates
	table  *dutytable.Table
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithRates overrides DefaultRates.
func WithRates(r Rates) Option {
	return func(o *engineOptions) { o.rates = r }
}

// WithDutyTable overrides the embedded Zambian specific-duty table.
func WithDutyTable(t *dutytable.Table) Option {
	return func(o *engineOptions) { o.table = t }
}

// WithLogger sets the engine logger. The default discards all output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *engineOptions) { o.logger = l }
}

// NewEngine builds an Engine. It fails if the configured rates are out of range.
func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{
		rates:  DefaultRates(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rates: %w", err)
	}
	if o.table == nil {
		o.table = dutytable.Default()
	}

	e := &Engine{
		calculators: make(map[Country]Calculator, 4),
		rates:       o.rates,
		table:       o.table,
		logger:      o.logger.With().Str("component", "calculator").Logger(),
	}
	for _, c := range []Calculator{
		NewNamibiaCalculator(o.rates.Namibia),
		NewSouthAfricaCalculator(o.rates.SouthAfrica),
		NewBotswanaCalculator(o.rates.Botswana),
		NewZambiaCalculator(o.rates.Zambia, o.table),
	} {
		e.calculators[c.Country()] = c
	}
	return e, nil
}

// ParseCountry validates a country code. Codes are matched exactly against
// NA, ZA, BW and ZM; anything else is an UnsupportedCountryError.
func ParseCountry(code string) (Country, error) {
	c := Country(code)
	if _, ok := currencies[c]; !ok {
		return "", &UnsupportedCountryError{Country: code}
	}
	return c, nil
}

// Calculate routes in to the calculator for in.Country. The country code is
// the only thing checked here; each calculator validates its own inputs.
func (e *Engine) Calculate(in Inputs) (*FullOutput, error) {
	country, err := ParseCountry(string(in.Country))
	if err != nil {
		e.logger.Debug().Str("country", string(in.Country)).Msg("rejected unsupported country")
		return nil, err
	}
	calc, ok := e.calculators[country]
	if !ok {
		return nil, &UnsupportedCountryError{Country: string(in.Country)}
	}
	in.Country = country

	out, err := calc.Calculate(in)
	if err != nil {
		e.logger.Debug().
			Str("country", string(country)).
			Err(err).
			Msg("calculation rejected")
		return nil, err
	}

	e.logger.Debug().
		Str("country", string(country)).
		Float64("cif", in.CIF).
		Float64("total_taxes", out.TotalTaxes).
		Float64("landed_cost", out.LandedCost).
		Bool("duty_fallback", out.DutyFallback).
		Msg("calculation complete")
	return out, nil
}

// Calculator returns the calculator registered for c.
func (e *Engine) Calculator(c Country) (Calculator, bool) {
	calc, ok := e.calculators[c]
	return calc, ok
}

// Countries returns the supported destinations in a fixed order.
func (e *Engine) Countries() []Country {
	return SupportedCountries()
}

// Rates returns the rate set the engine was built with.
func (e *Engine) Rates() Rates {
	return e.rates
}

// DutyTable returns the Zambian specific-duty table in use.
func (e *Engine) DutyTable() *dutytable.Table {
	return e.table
}

// Requirements returns the form metadata for a country, using the engine's VAT rates.
func (e *Engine) Requirements(code string) (Requirements, error) {
	c, err := ParseCountry(code)
	if err != nil {
		return Requirements{}, err
	}
	return requirementsFor(c, e.rates), nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := NewEngine()
	if err != nil {
		// DefaultRates is a constant rate set; failing here is a programming error.
		panic(err)
	}
	return e
})

// Calculate runs in through an Engine built with DefaultRates and the embedded table.
func Calculate(in Inputs) (*FullOutput, error) {
	return defaultEngine().Calculate(in)
}
