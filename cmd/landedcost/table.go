package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/landedcost/internal/dutytable"
)

func newTableCmd(a *app) *cobra.Command {
	var (
		output      string
		vehicleType string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the Zambian specific-duty schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := a.engine.DutyTable()
			rows := filterRows(table.Rows(), vehicleType)
			return render(cmd.OutOrStdout(), output, rows, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "# source: %s, %d rows, types: %s\n",
					table.Source(), table.Len(), strings.Join(table.Types(), ", "))
				fmt.Fprintln(tw, "TYPE\tCC\tAGE\tDUTY (ZMW)")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%d-%d\t%d-%d\t%s\n",
						r.Type, r.CCMin, r.CCMax, r.AgeMin, r.AgeMax, money(r.DutyZMW))
				}
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")
	cmd.Flags().StringVarP(&vehicleType, "type", "t", "", "only show rows for this vehicle type")
	return cmd
}

func filterRows(rows []dutytable.Row, vehicleType string) []dutytable.Row {
	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == "" {
		return rows
	}
	filtered := make([]dutytable.Row, 0, len(rows))
	for _, r := range rows {
		if strings.EqualFold(strings.TrimSpace(r.Type), vehicleType) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
