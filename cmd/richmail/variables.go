package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/richmail/pkg/variable"
)

func (c *cli) variablesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "variables",
		Short: "List the variables available in message content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			groups := variable.Default().Groups()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(groups)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, g := range groups {
				fmt.Fprintln(w, g.Category)
				for _, e := range g.Entries {
					fmt.Fprintf(w, "  %s\t%s\n", variable.Marker(e.Token), e.Label)
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print variables as JSON")
	return cmd
}
