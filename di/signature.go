package di

import (
	"reflect"
	"strconv"
	"strings"
)

const (
	// tagKey is the struct-tag key carrying resolution options.
	tagKey = "di"
	// defaultTagKey is the struct-tag key carrying a default literal.
	defaultTagKey = "default"
)

// Param is a constructor parameter descriptor: one per dependency field of a
// class, in declaration order. Descriptors are plain data and immutable for
// the duration of a resolution pass.
type Param struct {
	// Name is the parameter name used for name-keyed override lookup.
	// Defaults to the field name; overridable via `di:"name=..."`.
	Name string

	// Type is the declared field type.
	Type reflect.Type

	// Ref is the forward-reference annotation from `di:"ref=..."`, or ""
	// when the declared type is used directly.
	Ref string

	// HasDefault reports whether the field declares a `default:"..."` literal.
	HasDefault bool

	// Default is the raw default literal, parsed per field kind at
	// resolution time.
	Default string

	// index is the field index path from the root struct, through embedded
	// structs if the signature was inherited.
	index []int
}

// SignatureOf returns the constructor descriptor of class t: the ordered
// dependency parameters of its nearest user-defined signature.
//
// The walk mirrors class-ancestry linearization: the struct's own exported,
// non-embedded fields form its signature; a struct with none inherits the
// signature of the first exported embedded struct (depth-first, declaration
// order) that has one. ok is false when no signature exists anywhere, in
// which case the class has a trivial initializer and is constructed bare.
//
// Unexported fields and fields tagged `di:"-"` never appear in a signature.
// Unexported embedded structs are skipped entirely: fields reached through
// them are not settable via reflection, so they cannot carry dependencies.
func SignatureOf(t reflect.Type) (params []Param, ok bool) {
	base := indirect(t)
	if base == nil || base.Kind() != reflect.Struct {
		return nil, false
	}
	return signatureAt(base, nil)
}

// signatureAt collects the signature of t, prefixing field index paths so the
// graph builder can assign through embedded structs.
func signatureAt(t reflect.Type, prefix []int) ([]Param, bool) {
	own := make([]Param, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		p, skip := paramOf(f)
		if skip {
			continue
		}
		p.index = appendPath(prefix, i)
		own = append(own, p)
	}
	if len(own) > 0 {
		return own, true
	}

	// No signature of its own: inherit from embedded structs, in order.
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous || !f.IsExported() {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			continue
		}
		if params, ok := signatureAt(ft, appendPath(prefix, i)); ok {
			return params, true
		}
	}
	return nil, false
}

// paramOf builds a descriptor from a struct field. skip is true for `di:"-"`.
func paramOf(f reflect.StructField) (p Param, skip bool) {
	p = Param{Name: f.Name, Type: f.Type}
	if lit, ok := f.Tag.Lookup(defaultTagKey); ok {
		p.HasDefault = true
		p.Default = lit
	}

	tag, ok := f.Tag.Lookup(tagKey)
	if !ok {
		return p, false
	}
	if tag == "-" {
		return Param{}, true
	}
	for _, opt := range strings.Split(tag, ",") {
		switch key, val, _ := strings.Cut(opt, "="); key {
		case "name":
			if val != "" {
				p.Name = val
			}
		case "ref":
			p.Ref = val
		}
	}
	return p, false
}

// appendPath returns a fresh index path of prefix + i.
func appendPath(prefix []int, i int) []int {
	path := make([]int, len(prefix)+1)
	copy(path, prefix)
	path[len(prefix)] = i
	return path
}

// DefaultError is returned when a `default:"..."` literal cannot be turned
// into a value of the parameter's kind.
type DefaultError struct {
	// Param is the parameter name.
	Param string

	// Literal is the raw default literal.
	Literal string

	// Kind is the parameter's kind.
	Kind reflect.Kind
}

// Error implements the error interface.
func (e DefaultError) Error() string {
	// Example: di: parameter "timeout" has unusable default "abc" for kind int
	return "di: parameter " + strconv.Quote(e.Param) +
		" has unusable default " + strconv.Quote(e.Literal) +
		" for kind " + e.Kind.String()
}

// parseDefault converts a parameter's default literal into a value of the
// declared type. Supported kinds: string, bool, signed/unsigned integers,
// floats.
func parseDefault(p Param) (any, error) {
	if p.Type == nil {
		return nil, DefaultError{Param: p.Name, Literal: p.Default, Kind: reflect.Invalid}
	}

	v := reflect.New(p.Type).Elem()
	switch p.Type.Kind() {
	case reflect.String:
		v.SetString(p.Default)

	case reflect.Bool:
		b, err := strconv.ParseBool(p.Default)
		if err != nil {
			return nil, DefaultError{Param: p.Name, Literal: p.Default, Kind: p.Type.Kind()}
		}
		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(p.Default, 10, 64)
		if err != nil || v.OverflowInt(n) {
			return nil, DefaultError{Param: p.Name, Literal: p.Default, Kind: p.Type.Kind()}
		}
		v.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(p.Default, 10, 64)
		if err != nil || v.OverflowUint(n) {
			return nil, DefaultError{Param: p.Name, Literal: p.Default, Kind: p.Type.Kind()}
		}
		v.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(p.Default, 64)
		if err != nil || v.OverflowFloat(f) {
			return nil, DefaultError{Param: p.Name, Literal: p.Default, Kind: p.Type.Kind()}
		}
		v.SetFloat(f)

	default:
		return nil, DefaultError{Param: p.Name, Literal: p.Default, Kind: p.Type.Kind()}
	}
	return v.Interface(), nil
}
