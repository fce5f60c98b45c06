package di

import "reflect"

// Resolve resolves a single constructor parameter of owner, either from the
// override table or by recursively constructing it. Exposed for composition
// and testing; Build drives it once per parameter.
//
// ok is false when the parameter has no value: the graph builder leaves such
// fields untouched, so the class's own zero-value handling (or its Init hook
// rejection) applies. Receiver-analog fields (unexported, `di:"-"`) never
// appear in a signature and so never reach Resolve.
//
// Resolution order:
//
//  1. override lookup (name key, then raw type key, then resolved
//     forward-reference type key)
//  2. forward references are resolved to a live class (may fail with a
//     LookupError, which propagates)
//  3. a custom class is built recursively with the same override table
//  4. a declared default literal is parsed
//  5. otherwise, no value
func (b *Builder) Resolve(owner reflect.Type, p Param, ov *Overrides) (val any, ok bool, err error) {
	return b.resolveAt(owner, p, ov, 0)
}

// Resolve resolves a single parameter using the default builder.
// See (*Builder).Resolve.
func Resolve(owner reflect.Type, p Param, ov *Overrides) (val any, ok bool, err error) {
	return defaultBuilder.Resolve(owner, p, ov)
}

// resolveAt is Resolve with the recursion depth threaded through.
func (b *Builder) resolveAt(owner reflect.Type, p Param, ov *Overrides, depth int) (any, bool, error) {
	if val, ok, err := b.lookupOverride(owner, p, ov); err != nil {
		return nil, false, err
	} else if ok {
		return val, true, nil
	}

	// Effective declared type: a forward reference resolves to a live class,
	// anything else is taken as declared.
	effective := p.Type
	if IsForwardRef(p) {
		ref, err := b.ResolveForwardRef(owner, p.Ref)
		if err != nil {
			return nil, false, err
		}
		effective = ref
	}

	if IsCustomClass(indirect(effective)) {
		inst, err := b.buildAt(effective, ov, depth+1)
		if err != nil {
			return nil, false, err
		}
		return inst, true, nil
	}

	if p.HasDefault {
		val, err := parseDefault(p)
		if err != nil {
			return nil, false, err
		}
		return val, true, nil
	}

	return nil, false, nil
}
