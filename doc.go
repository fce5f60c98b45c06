// Package adi provides automatic, reflection-based dependency resolution for Go.
//
// adi is the auto-wiring counterpart to explicit-wiring DI helpers: instead of
// hand-assembling every dependency in a composition root, callers name a single
// root type and the resolver walks its constructor descriptor (exported struct
// fields), recursively building every dependency that is itself a custom class
// until the whole object graph is constructed.
//
// The repository is organized as:
//
//   - di: the resolver library (classification, forward references, overrides,
//     per-dependency resolution, graph building)
//   - examples/*: runnable composition-root examples
//
// The core ideas:
//
//   - Auto-wiring by declaration: a field whose type is a named struct is a
//     dependency and gets built recursively. Builtin kinds and parametric
//     annotation markers are never auto-built.
//
//   - Overrides, not injectors: callers substitute specific dependencies by
//     parameter name or by declared type. Name-keyed overrides win over
//     type-keyed ones.
//
//   - Forward references: a field may name its dependency as a plain string
//     (`di:"ref=Store"`), resolved against the namespace the owner type was
//     registered in. This keeps cross-file and configuration-driven references
//     out of the type system until build time.
//
// Resolution is synchronous and pure: nothing is cached, nothing is mutated
// after it is read, and every failure propagates to the original Build caller.
//
// Start with the examples under examples/ for end-to-end wiring style.
//
// Import
//
//	"github.com/sghaida/adi/di"
package adi
