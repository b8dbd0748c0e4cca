package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/rshade/landedcost/internal/calculator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// render writes v as indented JSON, or calls text with a tabwriter over w.
func render(w io.Writer, format string, v any, text func(tw *tabwriter.Writer)) error {
	switch format {
	case outputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case outputText, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		text(tw)
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputText, outputJSON)
	}
}

// money formats an amount for display. Calculations are never rounded;
// only this presentation is.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeBreakdown(tw *tabwriter.Writer, out *calculator.FullOutput) {
	fmt.Fprintf(tw, "Country\t%s\n", out.Country)
	fmt.Fprintf(tw, "Currency\t%s\n", out.Currency)
	fmt.Fprintln(tw, "\t")

	fmt.Fprintf(tw, "Duty\t%s\n", money(out.Duty))
	if out.Env != 0 {
		fmt.Fprintf(tw, "Environmental levy\t%s\n", money(out.Env))
	}
	if out.Adv != 0 {
		fmt.Fprintf(tw, "Ad valorem excise\t%s\n", money(out.Adv))
	}
	if out.Excise != 0 {
		fmt.Fprintf(tw, "Excise\t%s\n", money(out.Excise))
	}
	if out.CO2Levy != 0 {
		fmt.Fprintf(tw, "CO2 levy\t%s\n", money(out.CO2Levy))
	}
	fmt.Fprintf(tw, "VAT\t%s\n", money(out.VAT))
	fmt.Fprintf(tw, "Total taxes\t%s\n", money(out.TotalTaxes))
	fmt.Fprintln(tw, "\t")

	fmt.Fprintf(tw, "CIF\t%s\n", money(out.CIF))
	fmt.Fprintf(tw, "Japan-side costs\t%s\n", money(out.JapanSideCosts))
	fmt.Fprintf(tw, "Local clearing (per car)\t%s\n", money(out.LocalClearingShare))
	fmt.Fprintf(tw, "Inland delivery\t%s\n", money(out.InlandDelivery))
	fmt.Fprintf(tw, "Landed cost\t%s\n", money(out.LandedCost))

	if len(out.BreakdownNotes) > 0 {
		fmt.Fprintln(tw, "\t")
		fmt.Fprintln(tw, "Notes:")
		for _, note := range out.BreakdownNotes {
			fmt.Fprintf(tw, "- %s\n", note)
		}
	}
}

func writeRequirements(tw *tabwriter.Writer, req calculator.Requirements) {
	fmt.Fprintf(tw, "Country\t%s\n", req.Country)
	fmt.Fprintf(tw, "Currency\t%s\n", req.Currency)
	fmt.Fprintf(tw, "VAT rate\t%s%%\n", strconv.FormatFloat(req.VATRate*100, 'g', 6, 64))
	fmt.Fprintf(tw, "Uses CO2\t%t\n", req.RequiresCO2)
	fmt.Fprintf(tw, "Uses RRP\t%t\n", req.RequiresRRP)
	fmt.Fprintf(tw, "Uses Zambia details\t%t\n", req.RequiresZMFields)
	fmt.Fprintf(tw, "Uses new-vehicle toggle\t%t\n", req.RequiresNewVehicleToggle)
}
