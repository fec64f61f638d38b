package platform

import (
	"context"

	"github.com/mj1618/atspi-inspect/internal/model"
)

// Bus is the read-only view of the accessibility bus used by the resolver,
// inspector and walker. All calls are blocking request/response operations.
type Bus interface {
	// Applications returns the root objects of all registered applications,
	// most recently registered first.
	Applications(ctx context.Context) ([]model.ObjectRef, error)

	// Introspect returns the interface names implemented at ref.
	Introspect(ctx context.Context, ref model.ObjectRef) ([]string, error)

	// Property reads one property of the Accessible interface at ref.
	// Values are returned as string, int or model.ObjectRef;
	// a nil value means the remote reported no value.
	Property(ctx context.Context, ref model.ObjectRef, name string) (any, error)

	// Children lists the accessible children of ref in remote order.
	Children(ctx context.Context, ref model.ObjectRef) ([]model.ObjectRef, error)

	// RoleName returns the role of ref as a human-readable string.
	RoleName(ctx context.Context, ref model.ObjectRef) (string, error)

	// Close releases the bus connection.
	Close() error
}
