package model

import "fmt"

// NoValueText is rendered in place of a value the remote reports as absent.
const NoValueText = "--- No value ---"

// ResultKind tags the outcome of one remote read.
type ResultKind int

const (
	KindValue ResultKind = iota
	KindNoValue
	KindError
)

func (k ResultKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindNoValue:
		return "no-value"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of a single property read. Exactly one of Value or
// Err is meaningful, selected by Kind.
type Result struct {
	Kind  ResultKind
	Value any // string, int or ObjectRef
	Err   error
}

// ValueOf wraps a successfully fetched value.
func ValueOf(v any) Result {
	return Result{Kind: KindValue, Value: v}
}

// NoValue marks a value the remote explicitly reported as absent.
func NoValue() Result {
	return Result{Kind: KindNoValue}
}

// Failed marks a read that failed with err.
func Failed(err error) Result {
	return Result{Kind: KindError, Err: err}
}

// OK reports whether the read produced a value.
func (r Result) OK() bool {
	return r.Kind == KindValue
}

// String renders the result for display.
func (r Result) String() string {
	switch r.Kind {
	case KindNoValue:
		return NoValueText
	case KindError:
		if r.Err == nil {
			return "Error: unknown"
		}
		return "Error: " + r.Err.Error()
	}
	switch v := r.Value.(type) {
	case string:
		return v
	case ObjectRef:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
