// Package schema provides composable runtime validators for untyped values.
// Small building blocks (primitives, shapes, arrays, tuples, unions,
// intersections, tagged unions) compose into validators for structured data,
// forming a minimal schema language over values decoded from JSON-like
// documents.
//
// A Validator is a pure predicate: it takes an arbitrary value and returns a
// boolean verdict. It never returns an error, never panics on any input, and
// never mutates the value it inspects. Malformed input of any kind (wrong
// kind, missing field, wrong length, unknown tag) is an ordinary false
// verdict, not an exceptional control path.
//
// Validators are built bottom-up from primitives and are immutable once
// constructed, so a single Validator may be shared freely across goroutines.
// Cyclic or self-referential schemas are unsupported; evaluation recurses to
// the nesting depth of the composed schema, which the caller is responsible
// for bounding.
//
// Optional diagnostics trace which field, element, or member rejected a
// value; they are purely observational and never change the verdict. See
// LogFailures and WithLogger.
package schema
