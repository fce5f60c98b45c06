// Package di provides automatic, reflection-based dependency resolution.
//
// The package models a class as a named struct type and its constructor
// signature as the struct's exported fields (a "constructor descriptor").
// Given a root type, Build walks that descriptor and resolves every
// dependency field, recursively constructing any field whose effective type
// is a custom class, unless a caller-supplied override satisfies the field
// first.
//
// Design goals:
//   - Declarative wiring: dependencies are discovered from type structure,
//     not registered one by one.
//   - Overrides over injectors: callers substitute dependencies by parameter
//     name or by declared type, with name keys taking precedence.
//   - Safe defaults: typed errors for unresolvable references, unassignable
//     overrides, and dependency cycles.
//   - Test-friendly: every resolution step (classification, forward-reference
//     lookup, single-parameter resolution) is exposed for composition and
//     assertions.
//
// A field participates in resolution when it is exported and not opted out
// with `di:"-"`. Three tag options shape a field's descriptor:
//
//	Store  *Store                        // auto-built custom class
//	Conn   string `default:"localhost"`  // builtin with a default literal
//	Writer any    `di:"ref=AuditWriter"` // forward reference, resolved by name
//
// Forward references are plain name strings resolved against the namespace
// the owner type was registered in (see Registry). Names that are builtin
// kinds or contain a whole-word parametric marker (Optional, Union, List,
// ...) are never treated as classes.
//
// Resolution is synchronous, performs no caching, and mutates nothing it
// reads: concurrent Build calls are safe as long as the registry and the
// override tables are not concurrently mutated.
package di
