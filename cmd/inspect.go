package cmd

import (
	"fmt"

	"github.com/mj1618/atspi-inspect/internal/inspect"
	"github.com/mj1618/atspi-inspect/internal/output"
	"github.com/mj1618/atspi-inspect/internal/prompt"
	"github.com/mj1618/atspi-inspect/internal/resolve"
	"github.com/spf13/cobra"
)

func runInspect(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	printTree, _ := cmd.Flags().GetBool("print-tree")
	flat, _ := cmd.Flags().GetBool("flat")
	yes, _ := cmd.Flags().GetBool("yes")
	roles, _ := cmd.Flags().GetStringSlice("roles")

	bus, err := connectBus()
	if err != nil {
		return err
	}
	defer bus.Close()

	var prompter resolve.Prompter = prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
	if yes {
		prompter = prompt.Always(true)
	}

	opts := inspect.Options{
		Tree:     printTree,
		Flat:     flat,
		MaxDepth: cfg.MaxDepth,
		Roles:    roles,
	}
	reports, err := inspect.Applications(cmd.Context(), bus, prompter, query, opts, logger)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No application selected.")
		return nil
	}
	return output.Write(cmd.OutOrStdout(), output.OutputFormat, reports)
}
