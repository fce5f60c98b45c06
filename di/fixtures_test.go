package di_test

import (
	"errors"

	"github.com/sghaida/adi/di"
)

// Shared test classes, registered once in the default registry. Error-path
// tests use fresh registries so they never depend on (or pollute) this state.

// C has no dependencies and a trivial initializer.
type C struct{}

// B depends on C through a forward reference and carries a defaulted message.
type B struct {
	C       any    `di:"ref=C"`
	Message string `default:"default message"`
}

// BTyped depends on C through a live type.
type BTyped struct {
	C       *C
	Message string `default:"default message"`
}

// AWithRef references B by name.
type AWithRef struct {
	B any `di:"ref=B"`
}

// ADirect references BTyped directly.
type ADirect struct {
	B *BTyped
}

// J and K are mutually dependent with no terminating override.
type J struct {
	K *K
}

type K struct {
	J *J
}

// Selfish requires an instance of itself.
type Selfish struct {
	Self *Selfish
}

// ListCustomClass only starts with a special marker; it is a regular class.
type ListCustomClass struct{}

// Tuple collides with a special marker name and must never be auto-built.
type Tuple struct{}

var errMissingName = errors.New("guarded: missing name")

// Guarded rejects construction unless its Name was resolved.
type Guarded struct {
	Name string
}

// Init implements di.Initializer.
func (g *Guarded) Init() error {
	if g.Name == "" {
		return errMissingName
	}
	return nil
}

// BaseSvc carries the signature DerivedSvc inherits.
type BaseSvc struct {
	C   *C
	Tag string `default:"base"`
}

// DerivedSvc has no dependency fields of its own.
type DerivedSvc struct {
	BaseSvc
}

// ShadowSvc has its own signature, so BaseSvc's is ignored.
type ShadowSvc struct {
	BaseSvc
	Own string `default:"own"`
}

var (
	_ = di.Register[C]()
	_ = di.Register[B]()
	_ = di.Register[BTyped]()
	_ = di.Register[ListCustomClass]()
)
