package inspect

import (
	"context"
	"log/slog"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/output"
	"github.com/mj1618/atspi-inspect/internal/platform"
	"github.com/mj1618/atspi-inspect/internal/resolve"
)

// Options controls what is fetched for each resolved application.
type Options struct {
	Tree     bool     // Walk the accessible tree
	Flat     bool     // Report the tree flattened
	MaxDepth int      // Tree depth bound (0 = unlimited)
	Roles    []string // Keep only nodes with these roles, plus their ancestors
}

// Applications resolves query and inspects each selected application in
// confirmation order. An empty result means every candidate was declined.
func Applications(ctx context.Context, bus platform.Bus, prompter resolve.Prompter, query string, opts Options, logger *slog.Logger) ([]output.ApplicationReport, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	apps, err := resolve.New(bus, prompter, logger).Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	inspector := NewInspector(bus, logger)
	walker := NewWalker(bus, logger)

	reports := make([]output.ApplicationReport, 0, len(apps))
	for _, app := range apps {
		logger.Debug("inspecting application", "name", app.Name, "bus", app.Bus)
		props := inspector.Inspect(ctx, app.Root)
		if n := props.Failures(); n > 0 {
			logger.Debug("some properties could not be read", "name", app.Name, "bus", app.Bus, "failed", n)
		}

		var tree *model.Node
		if opts.Tree || opts.Flat {
			root := model.FilterTree(walker.Walk(ctx, app.Root, opts.MaxDepth), opts.Roles)
			tree = &root
		}
		reports = append(reports, output.NewApplicationReport(app, props, tree, opts.Flat))
	}
	return reports, nil
}
