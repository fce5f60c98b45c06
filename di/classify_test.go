package di_test

import (
	"reflect"
	"testing"

	"github.com/sghaida/adi/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// IsBuiltin
// -----------------------------------------------------------------------------

// TestIsBuiltin verifies builtin classification over kinds, named types, and
// non-type inputs.
func TestIsBuiltin(t *testing.T) {
	t.Parallel()

	type namedInt int

	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeOf(0), true},
		{"string", reflect.TypeOf(""), true},
		{"bool", reflect.TypeOf(false), true},
		{"float64", reflect.TypeOf(0.0), true},
		{"map is unnamed", reflect.TypeOf(map[string]int{}), false},
		{"slice is unnamed", reflect.TypeOf([]int{}), false},
		{"named int is not builtin", reflect.TypeOf(namedInt(0)), false},
		{"custom struct", reflect.TypeOf(C{}), false},
		{"nil type", nil, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, di.IsBuiltin(tc.typ))
		})
	}
}

//
// -----------------------------------------------------------------------------
// IsCustomClass
// -----------------------------------------------------------------------------

// TestIsCustomClass verifies that only named struct types that are neither
// builtin nor special markers are custom classes.
func TestIsCustomClass(t *testing.T) {
	t.Parallel()

	type localSvc struct{}
	type decision string

	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"named struct", reflect.TypeOf(C{}), true},
		{"local named struct", reflect.TypeOf(localSvc{}), true},
		{"special-prefixed struct", reflect.TypeOf(ListCustomClass{}), true},
		{"special-named struct", reflect.TypeOf(Tuple{}), false},
		{"builtin", reflect.TypeOf(0), false},
		{"unnamed struct", reflect.TypeOf(struct{}{}), false},
		{"slice of structs", reflect.TypeOf([]C{}), false},
		{"map of structs", reflect.TypeOf(map[string]C{}), false},
		{"pointer is not unwrapped here", reflect.TypeOf(&C{}), false},
		{"interface", reflect.TypeOf((*error)(nil)).Elem(), false},
		{"func", reflect.TypeOf(func() {}), false},
		{"named non-struct", reflect.TypeOf(decision("")), false},
		{"nil type", nil, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, di.IsCustomClass(tc.typ))
		})
	}
}

//
// -----------------------------------------------------------------------------
// Type-set snapshots
// -----------------------------------------------------------------------------

// TestBuiltinTypeNames verifies the builtin set is the frozen kind-name set.
func TestBuiltinTypeNames(t *testing.T) {
	t.Parallel()

	names := di.BuiltinTypeNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "int")
	assert.Contains(t, names, "string")
	assert.Contains(t, names, "bool")
	assert.IsIncreasing(t, names)

	// Snapshot: mutating the copy must not affect the set.
	names[0] = "mutated"
	assert.NotContains(t, di.BuiltinTypeNames(), "mutated")
}

// TestSpecialTypeNames verifies the hand-enumerated marker set.
func TestSpecialTypeNames(t *testing.T) {
	t.Parallel()

	names := di.SpecialTypeNames()
	assert.Len(t, names, 13)
	assert.Contains(t, names, "Optional")
	assert.Contains(t, names, "Union")
	assert.Contains(t, names, "List")
	assert.NotContains(t, names, "string")
}
