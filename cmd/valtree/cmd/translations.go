package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valtree/internal/demo"
	"github.com/dmitrymomot/valtree/pkg/i18n"
)

func newTranslationsCmd() *cobra.Command {
	var dir, output string
	c := &cobra.Command{
		Use:   "translations LANG",
		Short: "Print the message bundle of a language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := demo.NewTranslator(cmd.Context(), dir, i18n.WithNoLogging())
			if err != nil {
				return err
			}
			bundle, err := tr.ExportJSON(args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, json.RawMessage(bundle))
		},
	}
	c.Flags().StringVar(&dir, "translations", "", "directory of translation bundles (default: embedded)")
	c.Flags().StringVarP(&output, "output", "o", "json", "output format: json, yaml or toml")
	return c
}
