package di

import (
	"reflect"
	"strconv"
)

// LookupError is returned when a forward-reference annotation does not
// resolve to a class: either nothing is bound under the name in the owner's
// namespace, or the binding exists but is not a type.
type LookupError struct {
	// Name is the forward-reference annotation that failed to resolve.
	Name string

	// Namespace is the namespace path that was searched.
	Namespace string

	// NotAClass is true when a binding exists but is not a type.
	NotAClass bool
}

// Error implements the error interface.
func (e LookupError) Error() string {
	if e.NotAClass {
		// Example: di: found "sample" in namespace "example.com/app", but it is not a class
		return "di: found " + strconv.Quote(e.Name) +
			" in namespace " + strconv.Quote(e.Namespace) +
			", but it is not a class"
	}
	// Example: di: class "Store" not found in namespace "example.com/app"
	return "di: class " + strconv.Quote(e.Name) +
		" not found in namespace " + strconv.Quote(e.Namespace)
}

// IsForwardRef reports whether p declares its dependency as a plain name
// string eligible for class lookup: the annotation is present, is not exactly
// a builtin type name, and contains no whole-word special marker.
//
// The whole-word rule deliberately admits class names that merely start with
// a marker ("ListCustomClass") while rejecting genuine parametric annotations
// ("List[str]", "Optional[str]"). Bracketed custom class names are therefore
// unsupported.
func IsForwardRef(p Param) bool {
	if p.Ref == "" {
		return false
	}
	if _, builtin := builtinTypes[p.Ref]; builtin {
		return false
	}
	if specialTypePattern.MatchString(p.Ref) {
		return false
	}
	return true
}

// ResolveForwardRef resolves a forward-reference name against the namespace
// owner was registered in and returns the referenced class.
//
// It fails with a LookupError when the owner's namespace holds no binding for
// name, or when the binding is not a type.
func (b *Builder) ResolveForwardRef(owner reflect.Type, name string) (reflect.Type, error) {
	path := ""
	if base := indirect(owner); base != nil {
		path = base.PkgPath()
	}

	ns, ok := b.registry().NamespaceOf(owner)
	if !ok {
		return nil, LookupError{Name: name, Namespace: path}
	}
	binding, ok := ns.Lookup(name)
	if !ok {
		return nil, LookupError{Name: name, Namespace: path}
	}
	t, ok := binding.(reflect.Type)
	if !ok {
		return nil, LookupError{Name: name, Namespace: path, NotAClass: true}
	}
	return t, nil
}

// ResolveForwardRef resolves a forward-reference name using the default
// builder's registry. See (*Builder).ResolveForwardRef.
func ResolveForwardRef(owner reflect.Type, name string) (reflect.Type, error) {
	return defaultBuilder.ResolveForwardRef(owner, name)
}
