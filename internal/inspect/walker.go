package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
)

// TraversalError records a failed child enumeration on one node.
type TraversalError struct {
	Ref model.ObjectRef
	Err error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("list children of %s: %v", e.Ref, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// Walker builds the accessible-object tree below a root object.
type Walker struct {
	bus    platform.Bus
	logger *slog.Logger
}

// NewWalker creates a Walker. A nil logger discards diagnostics.
func NewWalker(bus platform.Bus, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walker{bus: bus, logger: logger}
}

// Walk fetches the tree rooted at root depth-first, keeping children in the
// order the remote returns them. maxDepth bounds how many levels below root
// are expanded (0 = unlimited); a node at the bound that still has children
// is marked Truncated. Failures are attached to the affected node and the
// walk continues with its siblings.
func (w *Walker) Walk(ctx context.Context, root model.ObjectRef, maxDepth int) model.Node {
	return w.walk(ctx, root, 0, maxDepth)
}

func (w *Walker) walk(ctx context.Context, ref model.ObjectRef, depth, maxDepth int) model.Node {
	node := model.Node{Ref: ref}

	name, err := w.bus.Property(ctx, ref, platform.PropName)
	node.Name = toResult(name, err)

	if role, err := w.bus.RoleName(ctx, ref); err == nil {
		node.Role = role
	} else {
		w.logger.Debug("role read failed", "bus", ref.Bus, "path", ref.Path, "error", err)
	}

	children, err := w.bus.Children(ctx, ref)
	if err != nil {
		node.Err = &TraversalError{Ref: ref, Err: err}
		w.logger.Warn("could not list children", "bus", ref.Bus, "path", ref.Path, "error", err)
		return node
	}

	children = slices.DeleteFunc(children, func(c model.ObjectRef) bool {
		if c.IsNull() {
			w.logger.Debug("skipping null child", "bus", ref.Bus, "path", ref.Path)
			return true
		}
		return false
	})

	if maxDepth > 0 && depth >= maxDepth {
		node.Truncated = len(children) > 0
		return node
	}

	node.Children = make([]model.Node, 0, len(children))
	for _, child := range children {
		node.Children = append(node.Children, w.walk(ctx, child, depth+1, maxDepth))
	}
	return node
}
