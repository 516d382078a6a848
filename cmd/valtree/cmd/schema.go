package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valtree/pkg/schema"
)

func newSchemaCmd() *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:     "schema TYPE",
		Short:   "Print the JSON Schema derived from a demo type",
		Example: "  valtree schema order -o yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookup(args[0])
			if err != nil {
				return err
			}
			raw, err := schema.New().Schema(entry.Type)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, json.RawMessage(raw))
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return c
}
