package platform

import (
	"regexp"
	"strings"
)

// Well-known AT-SPI names.
const (
	RegistryName        = "org.a11y.atspi.Registry"
	RootPath            = "/org/a11y/atspi/accessible/root"
	AccessibleInterface = "org.a11y.atspi.Accessible"
)

// Properties of the Accessible interface read by the inspector and walker.
const (
	PropName         = "Name"
	PropDescription  = "Description"
	PropLocale       = "Locale"
	PropAccessibleID = "AccessibleId"
	PropChildCount   = "ChildCount"
	PropParent       = "Parent"
	PropHelpText     = "HelpText"
)

const maxBusNameLen = 255

var (
	uniqueNameRe    = regexp.MustCompile(`^:[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)+$`)
	wellKnownNameRe = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*(\.[A-Za-z_-][A-Za-z0-9_-]*)+$`)
)

// IsUniqueName reports whether s is a unique connection name such as ":1.49".
func IsUniqueName(s string) bool {
	return len(s) <= maxBusNameLen && uniqueNameRe.MatchString(s)
}

// IsWellKnownName reports whether s is a dotted well-known bus name such as
// "org.a11y.atspi.Registry".
func IsWellKnownName(s string) bool {
	return len(s) <= maxBusNameLen && wellKnownNameRe.MatchString(s)
}

// IsBusName reports whether s is syntactically a unique or well-known bus name.
func IsBusName(s string) bool {
	return IsUniqueName(s) || IsWellKnownName(s)
}

// RemoteError is an error reply received from a remote bus peer.
type RemoteError struct {
	Name    string // D-Bus error name, e.g. org.freedesktop.DBus.Error.UnknownInterface
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Unimplemented reports whether the peer rejected the call because the
// object lacks the requested interface, method or property.
func (e *RemoteError) Unimplemented() bool {
	switch {
	case strings.HasSuffix(e.Name, ".UnknownInterface"),
		strings.HasSuffix(e.Name, ".UnknownMethod"),
		strings.HasSuffix(e.Name, ".UnknownProperty"),
		strings.HasSuffix(e.Name, ".UnknownObject"):
		return true
	}
	return false
}
