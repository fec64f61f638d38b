package cmd

import (
	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/output"
	"github.com/mj1618/atspi-inspect/internal/resolve"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accessible applications",
	Long:  "List the applications registered on the accessibility bus with their bus name, name, and root object.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("name", "", "Only list applications whose name contains this text (case-insensitive)")
}

func runList(cmd *cobra.Command, args []string) error {
	bus, err := connectBus()
	if err != nil {
		return err
	}
	defer bus.Close()

	name, _ := cmd.Flags().GetString("name")

	apps, err := resolve.New(bus, nil, logger).Candidates(cmd.Context())
	if err != nil {
		return err
	}
	apps = model.FilterApplications(apps, name)
	if apps == nil {
		apps = []model.Application{}
	}

	return output.Write(cmd.OutOrStdout(), output.OutputFormat, apps)
}
