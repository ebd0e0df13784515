package capability

import (
	"reflect"

	"github.com/vk/winbridge/internal/gui"
)

// CallShape is the exact signature a candidate method must expose to be
// selected. Matching is positional and strict: no coercion, no assignability,
// no covariance. A shape value is constant once built.
type CallShape struct {
	// Name of the method, matched case-sensitively.
	Name string
	// Params are the declared parameter types in order. The final entry must
	// be the slice type behind the variadic tail.
	Params []reflect.Type
	// Return is the single declared result type.
	Return reflect.Type
}

// windowShape is the one shape this package resolves: the window-layout call.
var windowShape = CallShape{
	Name: "LayoutWindow",
	Params: []reflect.Type{
		reflect.TypeOf(int(0)),
		reflect.TypeOf(gui.Rect{}),
		reflect.TypeOf(gui.WindowFunc(nil)),
		reflect.TypeOf(""),
		reflect.TypeOf(gui.Style{}),
		reflect.TypeOf([]gui.Option(nil)),
	},
	Return: reflect.TypeOf(gui.Rect{}),
}

// Matches reports whether a function type satisfies the shape. fn is the
// type of a bound method value (no receiver parameter). The check is pure
// and total: a candidate whose introspection panics is treated as a
// non-match, never as an error.
func (s CallShape) Matches(name string, fn reflect.Type) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	if name != s.Name {
		return false
	}
	if fn == nil || fn.Kind() != reflect.Func {
		return false
	}
	if fn.NumIn() != len(s.Params) {
		return false
	}
	for i, want := range s.Params {
		if fn.In(i) != want {
			return false
		}
	}
	// The tail must be a true variadic parameter, not a plain slice: the
	// call site passes a variable number of layout options.
	if !fn.IsVariadic() {
		return false
	}
	if fn.NumOut() != 1 || fn.Out(0) != s.Return {
		return false
	}
	return true
}
