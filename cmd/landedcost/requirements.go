package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRequirementsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "requirements <country>",
		Short: "Show which optional inputs a country uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.engine.Requirements(string(normalizeCountry(args[0])))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, req, func(tw *tabwriter.Writer) {
				writeRequirements(tw, req)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format (text, json)")
	return cmd
}
