package di

import "reflect"

// Overrides is a caller-supplied table of replacement dependencies, keyed by
// parameter name or by declared type. The two keyspaces are disjoint and may
// independently hold entries; name keys take precedence.
//
// The table is read-only during resolution: the resolver never merges or
// mutates it, and the same table flows unchanged through the whole graph.
type Overrides struct {
	names map[string]any
	types map[reflect.Type]any
}

// NewOverrides creates an empty override table.
func NewOverrides() *Overrides {
	return &Overrides{
		names: map[string]any{},
		types: map[reflect.Type]any{},
	}
}

// ByName stores an override for a parameter name and returns the table for
// chaining.
func (o *Overrides) ByName(name string, val any) *Overrides {
	if o == nil || name == "" {
		return o
	}
	if o.names == nil {
		o.names = map[string]any{}
	}
	o.names[name] = val
	return o
}

// ByType stores an override for a declared type and returns the table for
// chaining.
func (o *Overrides) ByType(t reflect.Type, val any) *Overrides {
	if o == nil || t == nil {
		return o
	}
	if o.types == nil {
		o.types = map[reflect.Type]any{}
	}
	o.types[t] = val
	return o
}

// ByTypeFor stores an override keyed by the type T and returns the table for
// chaining. Convenience over ByType(reflect.TypeOf(...), val).
func ByTypeFor[T any](o *Overrides, val any) *Overrides {
	return o.ByType(reflect.TypeOf((*T)(nil)).Elem(), val)
}

// Name returns the override stored for a parameter name (no panic on nil).
func (o *Overrides) Name(name string) (any, bool) {
	if o == nil || o.names == nil {
		return nil, false
	}
	v, ok := o.names[name]
	return v, ok
}

// Type returns the override stored for a declared type (no panic on nil).
func (o *Overrides) Type(t reflect.Type) (any, bool) {
	if o == nil || o.types == nil || t == nil {
		return nil, false
	}
	v, ok := o.types[t]
	return v, ok
}

// Len returns the total number of overrides across both keyspaces.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names) + len(o.types)
}

// lookupOverride consults the override table for a single parameter, first
// match wins:
//
//  1. the parameter name is a name key
//  2. the raw declared type is a type key
//  3. the parameter is a forward reference and its resolved class is a type
//     key (resolution may fail with a LookupError)
//
// ok is false when nothing matched and the caller proceeds to default
// resolution.
func (b *Builder) lookupOverride(owner reflect.Type, p Param, ov *Overrides) (val any, ok bool, err error) {
	if val, ok := ov.Name(p.Name); ok {
		return val, true, nil
	}
	if val, ok := ov.Type(p.Type); ok {
		return val, true, nil
	}
	if IsForwardRef(p) {
		ref, err := b.ResolveForwardRef(owner, p.Ref)
		if err != nil {
			return nil, false, err
		}
		if val, ok := ov.Type(ref); ok {
			return val, true, nil
		}
	}
	return nil, false, nil
}
