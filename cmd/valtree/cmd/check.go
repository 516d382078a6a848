package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valtree/internal/demo"
	"github.com/dmitrymomot/valtree/pkg/format"
	"github.com/dmitrymomot/valtree/pkg/i18n"
	"github.com/dmitrymomot/valtree/pkg/validator"
)

const stdinName = "-"

type checkOptions struct {
	typeName     string
	input        string
	output       string
	locale       string
	translations string
	flat         bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	c := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a document against a demo type",
		Long: `Decode FILE (or stdin with "-") as the given type and validate it.

On failure the error tree is printed and the exit code is 2. With --flat the
failures are printed as "path: message" lines instead.`,
		Example: `  valtree check --type signup signup.json
  valtree check -t order -l de -o yaml order.toml
  cat feedback.yaml | valtree check -t feedback -f yaml --flat -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args[0])
		},
	}

	f := c.Flags()
	f.StringVarP(&opts.typeName, "type", "t", "", "type to validate against")
	f.StringVarP(&opts.input, "format", "f", "", "input format: json, yaml or toml (default: file extension)")
	f.StringVarP(&opts.output, "output", "o", "", "output format: json, yaml or toml (default: json, text with --flat)")
	f.StringVarP(&opts.locale, "locale", "l", "", "render messages in this language")
	f.StringVar(&opts.translations, "translations", "", "directory of translation bundles (default: embedded)")
	f.BoolVar(&opts.flat, "flat", false, "print (path, message) pairs instead of the tree")
	_ = c.MarkFlagRequired("type")
	return c
}

func runCheck(cmd *cobra.Command, opts *checkOptions, file string) error {
	entry, err := lookup(opts.typeName)
	if err != nil {
		return err
	}
	in, err := inputFormat(opts.input, file)
	if err != nil {
		return err
	}
	data, err := readInput(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}

	_, err = entry.Decode(in, data)
	if err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s\n", displayName(file), entry.Name)
		return nil
	}
	var ferr *format.Error
	if !errors.As(err, &ferr) || ferr.Stage != format.StageValidation {
		return err
	}

	loc, err := localizer(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if err := printTree(cmd.OutOrStdout(), ferr.Tree, loc, opts); err != nil {
		return err
	}
	return fmt.Errorf("%w: %d failure(s)", ErrInvalid, ferr.Tree.Count())
}

func printTree(w io.Writer, tree validator.Errors, loc validator.Localizer, opts *checkOptions) error {
	if opts.flat {
		flat := validator.Flatten(tree)
		if loc != nil {
			localized, err := validator.FlattenLocalized(tree, loc)
			if err != nil {
				return fmt.Errorf("localize failures: %w", err)
			}
			flat = localized
		}
		if opts.output == "" || opts.output == "text" {
			for _, fe := range flat {
				path := fe.Path
				if path == "" {
					path = "/"
				}
				fmt.Fprintf(w, "%s: %s\n", path, fe.Message)
			}
			return nil
		}
		return render(w, opts.output, map[string]any{"errors": flat})
	}

	doc, err := validator.ToDocument(tree, loc)
	if err != nil {
		return fmt.Errorf("localize failures: %w", err)
	}
	return render(w, opts.output, doc)
}

func render(w io.Writer, output string, v any) error {
	out := format.JSON
	if output != "" {
		var err error
		if out, err = format.ParseFormat(output); err != nil {
			return err
		}
	}
	data, err := format.Render(out, v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func localizer(ctx context.Context, opts *checkOptions) (validator.Localizer, error) {
	if opts.locale == "" {
		return nil, nil
	}
	tr, err := demo.NewTranslator(ctx, opts.translations, i18n.WithNoLogging())
	if err != nil {
		return nil, err
	}
	return tr.Localizer(opts.locale), nil
}

func inputFormat(flag, file string) (format.Format, error) {
	if flag != "" {
		return format.ParseFormat(flag)
	}
	if file == stdinName {
		return "", errors.New("--format is required when reading stdin")
	}
	return format.FormatOf(file)
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == stdinName {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

func displayName(file string) string {
	if file == stdinName {
		return "stdin"
	}
	return file
}
