// Package resolve maps a free-text application query onto live accessible
// applications registered on the accessibility bus.
package resolve

//go:generate mockgen -source=resolver.go -destination=../mock/prompter_mock.go -package=mock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
)

// Prompter asks the user a yes/no question and returns the answer.
// An error means no answer could be obtained.
type Prompter interface {
	Confirm(question string) (bool, error)
}

var (
	// ErrNotFound is returned when a query matches no live application.
	ErrNotFound = errors.New("no application found")

	// ErrCancelled is returned when a confirmation prompt could not be answered.
	ErrCancelled = errors.New("application selection cancelled")
)

// Registry is the application used when the query is empty.
var Registry = model.Application{
	Bus:  platform.RegistryName,
	Name: platform.RegistryName,
	Root: model.ObjectRef{Bus: platform.RegistryName, Path: platform.RootPath},
}

// Resolver resolves queries against the applications registered on a Bus.
type Resolver struct {
	bus      platform.Bus
	prompter Prompter
	logger   *slog.Logger
}

// New creates a Resolver. A nil logger discards diagnostics.
func New(bus platform.Bus, prompter Prompter, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{bus: bus, prompter: prompter, logger: logger}
}

// Resolve returns the applications selected by query, in confirmation order.
//
// An empty query selects the registry. A query that is a bus name is tried
// directly first. Otherwise a single exact name match is returned without
// prompting; any further exact matches and all partial matches are confirmed
// one by one through the Prompter. Declining every candidate yields an empty
// result, not an error.
func (r *Resolver) Resolve(ctx context.Context, query string) ([]model.Application, error) {
	if query == "" {
		return []model.Application{Registry}, nil
	}

	if platform.IsBusName(query) {
		if app, ok := r.direct(ctx, query); ok {
			return []model.Application{app}, nil
		}
	}

	candidates, err := r.Candidates(ctx)
	if err != nil {
		return nil, err
	}
	return r.match(query, candidates)
}

// Candidates enumerates registered applications, skipping any that cannot be
// introspected or named.
func (r *Resolver) Candidates(ctx context.Context) ([]model.Application, error) {
	roots, err := r.bus.Applications(ctx)
	if err != nil {
		return nil, err
	}

	apps := make([]model.Application, 0, len(roots))
	for _, root := range roots {
		ifaces, err := r.bus.Introspect(ctx, root)
		if err != nil {
			r.logger.Warn("skipping application that could not be introspected", "bus", root.Bus, "error", err)
			continue
		}
		if !slices.Contains(ifaces, platform.AccessibleInterface) {
			r.logger.Warn("skipping application without accessible root", "bus", root.Bus)
			continue
		}
		name, err := r.bus.Property(ctx, root, platform.PropName)
		if err != nil {
			r.logger.Warn("skipping application that returned an error getting name", "bus", root.Bus, "error", err)
			continue
		}
		display, _ := name.(string)
		apps = append(apps, model.Application{Bus: root.Bus, Name: display, Root: root})
	}
	return apps, nil
}

// direct resolves a bus name without searching, if the name is live and
// exposes an accessible root.
func (r *Resolver) direct(ctx context.Context, busName string) (model.Application, bool) {
	root := model.ObjectRef{Bus: busName, Path: platform.RootPath}
	ifaces, err := r.bus.Introspect(ctx, root)
	if err != nil {
		r.logger.Debug("direct resolution failed, searching by name", "bus", busName, "error", err)
		return model.Application{}, false
	}
	if !slices.Contains(ifaces, platform.AccessibleInterface) {
		r.logger.Debug("bus name has no accessible root, searching by name", "bus", busName)
		return model.Application{}, false
	}

	app := model.Application{Bus: busName, Root: root}
	if name, err := r.bus.Property(ctx, root, platform.PropName); err == nil {
		app.Name, _ = name.(string)
	}
	return app, true
}

func (r *Resolver) match(query string, candidates []model.Application) ([]model.Application, error) {
	var exact []model.Application
	for _, c := range candidates {
		if c.Name == query {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact, nil
	}

	queryLower := strings.ToLower(query)
	selected := []model.Application{}
	matched, exactTaken := false, false
	for _, c := range candidates {
		var question string
		switch {
		case c.Name == query:
			if !exactTaken {
				// First exact match among several is taken as-is
				matched, exactTaken = true, true
				selected = append(selected, c)
				continue
			}
			question = fmt.Sprintf("Sought %s, found another application with the same name: %s (%s).", query, c.Name, c.Bus)
		case strings.EqualFold(c.Name, query):
			question = fmt.Sprintf("Sought %s, found application: %s (%s).", query, c.Name, c.Bus)
		case strings.Contains(strings.ToLower(c.Name), queryLower):
			question = fmt.Sprintf("Sought %s, partially matches application: %s (%s).", query, c.Name, c.Bus)
		default:
			continue
		}
		matched = true

		ok, err := r.prompter.Confirm(question + " Add this application? (Y/n)")
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		if ok {
			selected = append(selected, c)
		}
	}

	if !matched {
		return nil, fmt.Errorf("%w with name: %s", ErrNotFound, query)
	}
	return selected, nil
}
