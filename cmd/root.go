package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/atspi-inspect/internal/config"
	"github.com/mj1618/atspi-inspect/internal/logging"
	"github.com/mj1618/atspi-inspect/internal/output"
	"github.com/mj1618/atspi-inspect/internal/platform"
	"github.com/mj1618/atspi-inspect/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atspi-inspect [APPLICATION]",
	Short: "Inspect accessible applications on the AT-SPI bus",
	Long: `Resolve an application on the accessibility bus and print the accessible
properties of its root object, optionally followed by its full tree of
accessible objects.

APPLICATION may be a unique bus name (":1.49"), a well-known bus name
("org.a11y.atspi.Registry") or an application name. Names are matched exactly
first; partial, case-insensitive matches are confirmed interactively.
Each confirmation names the candidate's bus name after its application name,
for example "partially matches application: kate (:1.217)", so instances
sharing a name can be told apart.
Without APPLICATION the registry itself is inspected.

Examples:
  atspi-inspect
  atspi-inspect kate
  atspi-inspect -p :1.217
  atspi-inspect --format yaml --print-tree --max-depth 3 firefox`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runInspect,
}

// cfg and logger are set by the root PersistentPreRunE before any command runs.
var (
	cfg    = config.Default()
	logger = slog.New(slog.DiscardHandler)
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("bus-address", "", "Accessibility bus address (default: discovered via the session bus)")

	rootCmd.Flags().BoolP("print-tree", "p", false, "Also print the tree of accessible objects")
	rootCmd.Flags().Bool("flat", false, "Print the tree as a flat list with path breadcrumbs")
	rootCmd.Flags().Int("max-depth", 0, "Max tree depth below the root (0 = unlimited)")
	rootCmd.Flags().StringSlice("roles", nil, "Only keep tree nodes with these roles and their ancestors (meta-roles: interactive, text, container)")
	rootCmd.Flags().BoolP("yes", "y", false, "Accept every matching application without asking")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		flagCfg, overrides := flagOverrides(cmd)
		loaded, err := config.Load(flagCfg, overrides...)
		if err != nil {
			return err
		}
		cfg = loaded

		format, err := output.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = slog.New(logging.NewTerminalHandler(level))
		return nil
	}
}

// flagOverrides collects the config values set explicitly on the command line.
// Integer flags become overrides so an explicit 0 is not taken as unset.
func flagOverrides(cmd *cobra.Command) (config.Config, []config.Override) {
	var c config.Config
	var overrides []config.Override
	flags := cmd.Flags()
	if f := flags.Lookup("config"); f != nil && f.Changed {
		c.FilePath = f.Value.String()
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		c.Format = f.Value.String()
	}
	if f := flags.Lookup("log-level"); f != nil && f.Changed {
		c.LogLevel = f.Value.String()
	}
	if f := flags.Lookup("bus-address"); f != nil && f.Changed {
		c.BusAddress = f.Value.String()
	}
	if f := flags.Lookup("max-depth"); f != nil && f.Changed {
		depth, _ := flags.GetInt("max-depth")
		overrides = append(overrides, config.WithMaxDepth(depth))
	}
	return c, overrides
}

// connectBus opens the accessibility bus with the loaded configuration.
func connectBus() (platform.Bus, error) {
	return platform.Connect(platform.Options{
		Address: cfg.BusAddress,
		Logger:  logger,
	})
}
