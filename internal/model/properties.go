package model

// PropertyKey names one of the recognized root-object properties.
type PropertyKey string

const (
	KeyName         PropertyKey = "Name"
	KeyDescription  PropertyKey = "Description"
	KeyLocale       PropertyKey = "Locale"
	KeyAccessibleID PropertyKey = "Accessible ID"
	KeyChildCount   PropertyKey = "Child count"
	KeyParent       PropertyKey = "Parent"
	KeyHelpText     PropertyKey = "Help text"
)

// PropertyKeys lists the recognized keys in display order.
var PropertyKeys = []PropertyKey{
	KeyName,
	KeyDescription,
	KeyLocale,
	KeyAccessibleID,
	KeyChildCount,
	KeyParent,
	KeyHelpText,
}

// Property pairs a key with the outcome of reading it.
type Property struct {
	Key    PropertyKey
	Result Result
}

// PropertySet holds one entry per recognized key, in PropertyKeys order.
type PropertySet []Property

// Get returns the result stored for key.
func (s PropertySet) Get(key PropertyKey) (Result, bool) {
	for _, p := range s {
		if p.Key == key {
			return p.Result, true
		}
	}
	return Result{}, false
}

// Failures counts entries that carry an error marker.
func (s PropertySet) Failures() int {
	n := 0
	for _, p := range s {
		if p.Result.Kind == KindError {
			n++
		}
	}
	return n
}
