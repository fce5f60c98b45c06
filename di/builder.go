package di

import (
	"errors"
	"reflect"
	"strconv"
)

// DefaultMaxDepth bounds dependency-graph recursion. A graph deeper than this
// almost certainly contains a cycle with no terminating override.
const DefaultMaxDepth = 256

// ErrNilType is returned when a nil reflect.Type is provided to BuildType.
var ErrNilType = errors.New("di: nil type provided")

// NotConstructibleError is returned when the build target is not a custom
// class (builtin kind, unnamed type, interface, special marker, ...).
type NotConstructibleError struct {
	// Type is the rejected build target.
	Type reflect.Type
}

// Error implements the error interface.
func (e NotConstructibleError) Error() string {
	// Example: di: type "map[string]int" is not a constructible class
	return "di: type " + strconv.Quote(typeString(e.Type)) + " is not a constructible class"
}

// DepthError is returned when the dependency graph exceeds the builder's
// maximum depth, which is how an unbounded mutual/self dependency with no
// terminating override surfaces.
type DepthError struct {
	// Type is the class whose construction exceeded the limit.
	Type reflect.Type

	// Depth is the recursion depth that was reached.
	Depth int
}

// Error implements the error interface.
func (e DepthError) Error() string {
	// Example: di: dependency graph for "app.J" exceeds max depth 256 (dependency cycle?)
	return "di: dependency graph for " + strconv.Quote(typeString(e.Type)) +
		" exceeds max depth " + strconv.Itoa(e.Depth) + " (dependency cycle?)"
}

// AssignError is returned when a resolved value cannot be assigned to its
// parameter's field: the constructor-argument rejection of this package.
type AssignError struct {
	// Class is the class under construction.
	Class reflect.Type

	// Param is the parameter name.
	Param string

	// Got is the type of the resolved value.
	Got reflect.Type

	// Want is the declared field type.
	Want reflect.Type
}

// Error implements the error interface.
func (e AssignError) Error() string {
	// Example: di: cannot assign "string" to parameter "Store" of "app.Svc" (want "*app.Store")
	return "di: cannot assign " + strconv.Quote(typeString(e.Got)) +
		" to parameter " + strconv.Quote(e.Param) +
		" of " + strconv.Quote(typeString(e.Class)) +
		" (want " + strconv.Quote(typeString(e.Want)) + ")"
}

// typeString renders a type for error messages without panicking on nil.
func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Initializer is an optional hook invoked on every freshly built instance
// after its dependency fields are assigned. A non-nil error rejects the
// instance and propagates verbatim to the original Build caller. This is
// where a class enforces its own required parameters.
type Initializer interface {
	Init() error
}

// Builder constructs fully wired object graphs. It carries the module
// registry used for forward-reference lookups and the recursion depth limit.
//
// A Builder is stateless across calls: every build introspects from scratch
// and nothing is cached, so concurrent builds are safe as long as the
// registry and the override tables are not mutated during resolution.
type Builder struct {
	reg      Registry
	maxDepth int
}

// NewBuilder creates a Builder over the given registry. A nil registry falls
// back to DefaultRegistry.
func NewBuilder(reg Registry) *Builder {
	return &Builder{reg: reg, maxDepth: DefaultMaxDepth}
}

// WithMaxDepth sets the recursion depth limit and returns the builder for
// chaining. Non-positive values are ignored.
func (b *Builder) WithMaxDepth(n int) *Builder {
	if b != nil && n > 0 {
		b.maxDepth = n
	}
	return b
}

// registry returns the effective registry (no panic on nil receiver).
func (b *Builder) registry() Registry {
	if b == nil || b.reg == nil {
		return DefaultRegistry
	}
	return b.reg
}

// depthLimit returns the effective recursion limit.
func (b *Builder) depthLimit() int {
	if b == nil || b.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return b.maxDepth
}

// defaultBuilder backs the package-level Build/Resolve helpers.
var defaultBuilder = NewBuilder(nil)

// Default returns the builder used by the package-level helpers.
func Default() *Builder {
	return defaultBuilder
}

// BuildType constructs a fully wired instance of class t (a named struct
// type, pointer allowed) and returns it as a pointer to the struct.
//
// Parameters are resolved in declaration order; parameters resolving to no
// value are left at their zero value. If the instance implements Initializer,
// its Init hook runs last and any error it returns propagates unchanged.
func (b *Builder) BuildType(t reflect.Type, ov *Overrides) (any, error) {
	return b.buildAt(t, ov, 0)
}

// BuildType constructs an instance of t using the default builder.
// See (*Builder).BuildType.
func BuildType(t reflect.Type, ov *Overrides) (any, error) {
	return defaultBuilder.BuildType(t, ov)
}

// Build constructs a fully wired *T using the default builder. T is the
// concrete struct type of the class. A nil override table means no overrides.
func Build[T any](ov *Overrides) (*T, error) {
	return BuildWith[T](defaultBuilder, ov)
}

// BuildWith constructs a fully wired *T using an explicit builder.
func BuildWith[T any](b *Builder, ov *Overrides) (*T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	inst, err := b.BuildType(t, ov)
	if err != nil {
		return nil, err
	}
	v, ok := inst.(*T)
	if !ok {
		// T was a pointer or interface type rather than the struct itself.
		return nil, NotConstructibleError{Type: t}
	}
	return v, nil
}

// MustBuild is Build or panic. Useful in examples/tests where a wiring
// failure should fail fast.
func MustBuild[T any](ov *Overrides) *T {
	v, err := Build[T](ov)
	if err != nil {
		panic(err)
	}
	return v
}

// buildAt performs one construction frame at the given recursion depth.
func (b *Builder) buildAt(t reflect.Type, ov *Overrides, depth int) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if depth > b.depthLimit() {
		return nil, DepthError{Type: t, Depth: depth}
	}

	base := indirect(t)
	if !IsCustomClass(base) {
		return nil, NotConstructibleError{Type: t}
	}

	inst := reflect.New(base)

	// A class with no signature anywhere in its ancestry has a trivial
	// initializer: construct it bare.
	if params, ok := signatureAt(base, nil); ok {
		for _, p := range params {
			val, present, err := b.resolveAt(base, p, ov, depth)
			if err != nil {
				return nil, err
			}
			if !present {
				continue
			}
			if err := setParam(inst.Elem(), base, p, val); err != nil {
				return nil, err
			}
		}
	}

	if hook, ok := inst.Interface().(Initializer); ok {
		if err := hook.Init(); err != nil {
			return nil, err
		}
	}
	return inst.Interface(), nil
}

// setParam assigns a resolved value to the parameter's field, allocating
// intermediate embedded pointers along the index path as needed.
func setParam(root reflect.Value, class reflect.Type, p Param, val any) error {
	fv := fieldByIndexAlloc(root, p.index)
	if val == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}

	rv := reflect.ValueOf(val)
	switch {
	case rv.Type().AssignableTo(fv.Type()):
		fv.Set(rv)
	case rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Type().Elem().AssignableTo(fv.Type()):
		// Built instances are pointers; value fields take the element.
		fv.Set(rv.Elem())
	default:
		return AssignError{Class: class, Param: p.Name, Got: rv.Type(), Want: fv.Type()}
	}
	return nil
}

// fieldByIndexAlloc is FieldByIndex with nil embedded pointers allocated
// instead of panicking.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 {
			if v.Kind() == reflect.Ptr {
				if v.IsNil() {
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}
	return v
}
