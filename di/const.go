package di

import (
	"reflect"
	"sort"
)

// specialTypeNames enumerates parametric annotation markers that must never
// be treated as instantiable classes when they appear (whole-word) in a
// forward-reference annotation. The set is fixed and ships with the resolver;
// it is intentionally not pluggable.
//
// The markers cover the parametric notations commonly found in wiring specs
// and IDL-derived annotations (unions, optionals, literals, generic
// containers), so annotations imported from such sources are never misread
// as injectable classes.
var specialTypeNames = []string{
	"Any",
	"Callable",
	"ClassVar",
	"Dict",
	"Final",
	"List",
	"Literal",
	"Optional",
	"Protocol",
	"Set",
	"Tuple",
	"TypeVar",
	"Union",
}

// builtinTypes is the set of names considered primitive. It is computed once
// at process start by enumerating the host type registry (every reflect.Kind
// name) and is never mutated afterwards.
var builtinTypes = make(map[string]struct{})

// specialTypes is the membership view of specialTypeNames.
var specialTypes = make(map[string]struct{}, len(specialTypeNames))

func init() {
	for k := reflect.Bool; k <= reflect.UnsafePointer; k++ {
		builtinTypes[k.String()] = struct{}{}
	}
	for _, name := range specialTypeNames {
		specialTypes[name] = struct{}{}
	}
}

// BuiltinTypeNames returns a sorted snapshot of the builtin type-name set.
// Intended for diagnostics and docs.
func BuiltinTypeNames() []string {
	names := make([]string, 0, len(builtinTypes))
	for name := range builtinTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SpecialTypeNames returns a copy of the special annotation-marker set.
// Intended for diagnostics and docs.
func SpecialTypeNames() []string {
	names := make([]string, len(specialTypeNames))
	copy(names, specialTypeNames)
	return names
}
