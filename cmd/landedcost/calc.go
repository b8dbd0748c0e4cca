package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rshade/landedcost/internal/calculator"
	"github.com/rshade/landedcost/internal/server"
)

// remoteTimeout bounds a single --remote call.
const remoteTimeout = 10 * time.Second

type calcFlags struct {
	input  string
	output string
	remote string

	country            string
	cif                float64
	fuel               string
	co2                float64
	rrp                float64
	newVehicle         bool
	containerCars      int
	japanSideCosts     float64
	localClearingCosts float64
	inlandDelivery     float64

	zmType   string
	zmCC     int
	zmAge    int
	zmExcise float64
	zmEV     bool
	zmHybrid bool
}

func newCalcCmd(a *app) *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate duties, taxes and landed cost for one vehicle",
		Example: `  landedcost calc --country NA --cif 150000 --co2 150 --rrp 250000 \
    --japan-side-costs 20000 --local-clearing-costs 26255.65 --inland-delivery 5000
  landedcost calc --country ZM --cif 100000 --zm-type sedan --zm-cc 1500 --zm-age 3 --zm-excise-rate 20
  landedcost calc --input vehicle.json --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.inputs(cmd)
			if err != nil {
				return err
			}

			var out *calculator.FullOutput
			if f.remote != "" {
				out, err = calcRemote(cmd.Context(), f.remote, in)
			} else {
				out, err = a.engine.Calculate(in)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), f.output, out, func(tw *tabwriter.Writer) {
				writeBreakdown(tw, out)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", `read inputs as JSON from a file ("-" for stdin); other input flags are ignored`)
	fl.StringVarP(&f.output, "output", "o", outputText, "output format (text, json)")
	fl.StringVar(&f.remote, "remote", "", "gRPC address of a running 'landedcost serve' to calculate on")

	fl.StringVarP(&f.country, "country", "c", "", "destination country (NA, ZA, BW, ZM)")
	fl.Float64Var(&f.cif, "cif", 0, "customs value (cost, insurance and freight)")
	fl.StringVar(&f.fuel, "fuel", string(calculator.FuelPetrol), "fuel type (petrol, diesel)")
	fl.Float64Var(&f.co2, "co2", 0, "CO2 emissions in g/km")
	fl.Float64Var(&f.rrp, "rrp", 0, "retail reference price; defaults to CIF x 1.5 when omitted")
	fl.BoolVar(&f.newVehicle, "new-vehicle", false, "vehicle is new (South African CO2 levy)")
	fl.IntVar(&f.containerCars, "container-cars", 1, "vehicles sharing the container")
	fl.Float64Var(&f.japanSideCosts, "japan-side-costs", 0, "export-side costs")
	fl.Float64Var(&f.localClearingCosts, "local-clearing-costs", 0, "clearing cost for the whole container")
	fl.Float64Var(&f.inlandDelivery, "inland-delivery", 0, "port-to-buyer delivery cost")

	fl.StringVar(&f.zmType, "zm-type", "", "Zambia: vehicle category (sedan, suv, pickup, ...)")
	fl.IntVar(&f.zmCC, "zm-cc", 0, "Zambia: engine capacity in cc")
	fl.IntVar(&f.zmAge, "zm-age", 0, "Zambia: vehicle age in years")
	fl.Float64Var(&f.zmExcise, "zm-excise-rate", 0, "Zambia: excise rate in percent")
	fl.BoolVar(&f.zmEV, "zm-ev", false, "Zambia: fully electric vehicle")
	fl.BoolVar(&f.zmHybrid, "zm-hybrid", false, "Zambia: hybrid vehicle")

	return cmd
}

// inputs builds calculator inputs from --input or from the individual flags.
func (f *calcFlags) inputs(cmd *cobra.Command) (calculator.Inputs, error) {
	if f.input != "" {
		in, err := readInputs(cmd.InOrStdin(), f.input)
		if err != nil {
			return calculator.Inputs{}, err
		}
		in.Country = normalizeCountry(string(in.Country))
		return in, nil
	}
	if f.country == "" {
		return calculator.Inputs{}, fmt.Errorf("--country is required unless --input is given")
	}

	in := calculator.Inputs{
		Country:            normalizeCountry(f.country),
		CIF:                f.cif,
		Fuel:               calculator.Fuel(strings.ToLower(f.fuel)),
		CO2:                f.co2,
		IsNewVehicle:       f.newVehicle,
		ContainerCars:      f.containerCars,
		JapanSideCosts:     f.japanSideCosts,
		LocalClearingCosts: f.localClearingCosts,
		InlandDelivery:     f.inlandDelivery,
	}
	if cmd.Flags().Changed("rrp") {
		rrp := f.rrp
		in.RRP = &rrp
	}
	if in.Country == calculator.CountryZambia || f.zambiaFlagsSet(cmd) {
		in.ZM = &calculator.ZambiaDetails{
			Type:       f.zmType,
			CC:         f.zmCC,
			AgeYears:   f.zmAge,
			ExciseRate: f.zmExcise,
			IsEV:       f.zmEV,
			IsHybrid:   f.zmHybrid,
		}
	}
	return in, nil
}

// normalizeCountry lets users type country codes in any case; the calculator
// itself only accepts the exact upper-case codes.
func normalizeCountry(code string) calculator.Country {
	return calculator.Country(strings.ToUpper(strings.TrimSpace(code)))
}

func (f *calcFlags) zambiaFlagsSet(cmd *cobra.Command) bool {
	for _, name := range []string{"zm-type", "zm-cc", "zm-age", "zm-excise-rate", "zm-ev", "zm-hybrid"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func readInputs(stdin io.Reader, path string) (calculator.Inputs, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return calculator.Inputs{}, fmt.Errorf("failed to read inputs from %s: %w", path, err)
	}

	var in calculator.Inputs
	if err := json.Unmarshal(data, &in); err != nil {
		return calculator.Inputs{}, fmt.Errorf("failed to parse inputs from %s: %w", path, err)
	}
	return in, nil
}

func calcRemote(ctx context.Context, addr string, in calculator.Inputs) (*calculator.FullOutput, error) {
	conn, err := server.Dial(addr)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	return server.NewClient(conn).Calculate(ctx, in)
}
