package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valtree/internal/demo"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitInvalid = 2
)

var (
	ErrUnknownType = errors.New("unknown type")
	// ErrInvalid is returned by check when the document fails validation.
	ErrInvalid = errors.New("document is invalid")
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "valtree",
		Short: "Validate documents and render structured error trees",
		Long: `valtree validates JSON, YAML and TOML documents against the demo types
and prints every failure as an error tree or as flat (path, message) pairs.

Types:
  ` + strings.Join(demo.Names(), ", "),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCheckCmd(),
		newSchemaCmd(),
		newTypesCmd(),
		newTranslationsCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalid):
		return ExitInvalid
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
}

func lookup(name string) (demo.Entry, error) {
	entry, ok := demo.Lookup(name)
	if !ok {
		return demo.Entry{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownType, name, strings.Join(demo.Names(), ", "))
	}
	return entry, nil
}
