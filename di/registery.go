package di

import (
	"reflect"
	"sort"
	"sync"
)

// Namespace is a read-mostly binding table, the analog of a module scope.
// Forward references are looked up in the namespace their owner class was
// registered in.
//
// It is intentionally:
// - read-only during resolution
// - side effect free
// - keyed by plain names
type Namespace interface {
	// Lookup returns the binding for name if present. Bindings are arbitrary
	// values; only reflect.Type bindings resolve as classes.
	Lookup(name string) (val any, ok bool)
}

// Registry locates the namespace a class was defined in. It is consumed as an
// injected capability: the resolver never assumes how bindings are organized
// beyond these two operations.
type Registry interface {
	// NamespaceOf returns the namespace owning t, keyed by t's package path.
	NamespaceOf(t reflect.Type) (ns Namespace, ok bool)
}

// MapNamespace is a simple in-memory Namespace.
type MapNamespace struct {
	path string

	mu    sync.RWMutex
	items map[string]any
}

// NewMapNamespace creates an empty namespace identified by path.
func NewMapNamespace(path string) *MapNamespace {
	return &MapNamespace{path: path, items: map[string]any{}}
}

// Path returns the namespace identifier (a package path).
func (n *MapNamespace) Path() string {
	if n == nil {
		return ""
	}
	return n.path
}

// Provide stores a binding under a name and returns the namespace for
// chaining. Re-providing a name overwrites the previous binding.
func (n *MapNamespace) Provide(name string, val any) *MapNamespace {
	if n == nil || name == "" {
		return n
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.items == nil {
		n.items = map[string]any{}
	}
	n.items[name] = val
	return n
}

// ProvideType stores a type binding under the type's own name and returns the
// namespace for chaining. Nil and unnamed types are ignored.
func (n *MapNamespace) ProvideType(t reflect.Type) *MapNamespace {
	if t == nil || t.Name() == "" {
		return n
	}
	return n.Provide(t.Name(), t)
}

// Lookup implements Namespace (no panic on nil receiver).
func (n *MapNamespace) Lookup(name string) (any, bool) {
	if n == nil {
		return nil, false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.items[name]
	return v, ok
}

// Names returns a sorted snapshot of the bound names, for diagnostics/docs.
func (n *MapNamespace) Names() []string {
	if n == nil {
		return nil
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	names := make([]string, 0, len(n.items))
	for name := range n.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings.
func (n *MapNamespace) Len() int {
	if n == nil {
		return 0
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.items)
}

// TypeRegistry is the default Registry: namespaces keyed by package path.
//
// Registration normally happens at process startup; resolution only reads.
// Both sides are guarded, so late registration is safe as long as callers do
// not expect it to affect in-flight resolutions.
type TypeRegistry struct {
	mu     sync.RWMutex
	spaces map[string]*MapNamespace
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{spaces: map[string]*MapNamespace{}}
}

// Namespace returns the namespace for path, creating it if needed.
func (r *TypeRegistry) Namespace(path string) *MapNamespace {
	if r == nil || path == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spaces == nil {
		r.spaces = map[string]*MapNamespace{}
	}
	ns, ok := r.spaces[path]
	if !ok {
		ns = NewMapNamespace(path)
		r.spaces[path] = ns
	}
	return ns
}

// NamespaceOf implements Registry: the namespace of t's package path, after
// pointer unwrapping.
func (r *TypeRegistry) NamespaceOf(t reflect.Type) (Namespace, bool) {
	if r == nil || t == nil {
		return nil, false
	}
	base := indirect(t)
	if base == nil || base.PkgPath() == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns, ok := r.spaces[base.PkgPath()]
	if !ok {
		return nil, false
	}
	return ns, true
}

// Paths returns a sorted snapshot of the registered namespace paths.
func (r *TypeRegistry) Paths() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.spaces))
	for path := range r.spaces {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// DefaultRegistry backs the package-level Build/Resolve helpers and any
// Builder constructed without an explicit registry.
var DefaultRegistry = NewTypeRegistry()

// Register binds T in DefaultRegistry under its own name, inside the
// namespace of its package path, and returns the registered type.
//
// Typical usage is one call per forward-referenceable class at startup:
//
//	var _ = di.Register[AuditWriter]()
func Register[T any]() reflect.Type {
	return RegisterIn[T](DefaultRegistry)
}

// RegisterIn binds T in r under its own name and returns the registered type.
func RegisterIn[T any](r *TypeRegistry) reflect.Type {
	base := indirect(reflect.TypeOf((*T)(nil)).Elem())
	r.Namespace(base.PkgPath()).ProvideType(base)
	return base
}
