package di

import "reflect"

// maxIndirect bounds pointer unwrapping when normalizing a declared type to
// its base type. Guards against pathological pointer nesting.
const maxIndirect = 8

// indirect unwraps pointers up to maxIndirect levels and returns the base type.
func indirect(t reflect.Type) reflect.Type {
	for i := 0; t != nil && t.Kind() == reflect.Ptr && i < maxIndirect; i++ {
		t = t.Elem()
	}
	return t
}

// IsBuiltin reports whether t is a concrete type whose name is a member of
// the builtin type set.
func IsBuiltin(t reflect.Type) bool {
	if t == nil || t.Name() == "" {
		return false
	}
	_, ok := builtinTypes[t.Name()]
	return ok
}

// IsCustomClass reports whether t is a class eligible for recursive
// construction: a named struct type that is neither builtin nor a special
// annotation marker.
//
// Anything that is not a named struct (unnamed composites such as []C or
// map[string]C, interfaces, funcs, scalar kinds) is never a custom class,
// even when its name coincides with one.
func IsCustomClass(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
		return false
	}
	if IsBuiltin(t) {
		return false
	}
	if _, special := specialTypes[t.Name()]; special {
		return false
	}
	return true
}
