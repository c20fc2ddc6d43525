package schema

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// nodeKind identifies a node in the validator tree.
type nodeKind int

const (
	kindInvalid nodeKind = iota
	kindUndefined
	kindNull
	kindBoolean
	kindNumber
	kindString
	kindLiteral
	kindShape
	kindArray
	kindTuple
	kindUnion
	kindIntersection
	kindTaggedUnion
)

// node is one node of the validator tree. Validators are an explicit tree of
// nodes walked by a single recursive evaluator rather than a chain of
// closures, which keeps a built schema introspectable and free of hidden
// captured state. Nodes are never mutated after construction.
type node struct {
	kind nodeKind

	// literal holds the canonical JSON form of a Literal's constant, or nil
	// when the constant has no canonical form (such a literal matches
	// nothing).
	literal []byte

	// fields holds the declared fields of a shape.
	fields map[string]*node

	// members holds the element validator of an array (length one), the
	// positional validators of a tuple, or the member validators of a union
	// or intersection.
	members []*node

	// tagField and variants describe a tagged union: the name of the
	// discriminant field and the per-tag field definitions.
	tagField string
	variants map[string]map[string]*node
}

// Kind names the form of a Validator, for introspection and tracing.
type Kind string

const (
	KindInvalid      Kind = "invalid"
	KindUndefined    Kind = "undefined"
	KindNull         Kind = "null"
	KindBoolean      Kind = "boolean"
	KindNumber       Kind = "number"
	KindString       Kind = "string"
	KindLiteral      Kind = "literal"
	KindShape        Kind = "shape"
	KindArray        Kind = "array"
	KindTuple        Kind = "tuple"
	KindUnion        Kind = "union"
	KindIntersection Kind = "intersection"
	KindTaggedUnion  Kind = "taggedUnion"
)

// Validator is a pure predicate over an untyped value, the unit of
// composition. Validators are immutable once constructed and safe for
// concurrent use. The zero Validator rejects every input.
type Validator struct {
	node *node
}

// Fields maps field names to the validators their values must satisfy. It is
// the field definition accepted by Shape and by each TaggedUnion variant.
type Fields map[string]Validator

// Kind returns the form of the validator.
func (v Validator) Kind() Kind {
	if v.node == nil {
		return KindInvalid
	}

	switch v.node.kind {
	case kindUndefined:
		return KindUndefined
	case kindNull:
		return KindNull
	case kindBoolean:
		return KindBoolean
	case kindNumber:
		return KindNumber
	case kindString:
		return KindString
	case kindLiteral:
		return KindLiteral
	case kindShape:
		return KindShape
	case kindArray:
		return KindArray
	case kindTuple:
		return KindTuple
	case kindUnion:
		return KindUnion
	case kindIntersection:
		return KindIntersection
	case kindTaggedUnion:
		return KindTaggedUnion
	case kindInvalid:
		return KindInvalid
	}

	return KindInvalid
}

// String returns a compact description of the schema, suitable for log
// output. It is not a serialization format.
func (v Validator) String() string {
	return describe(v.node)
}

func describe(n *node) string {
	if n == nil {
		return string(KindInvalid)
	}

	switch n.kind {
	case kindLiteral:
		if n.literal == nil {
			return "literal(<no canonical form>)"
		}

		return fmt.Sprintf("literal(%s)", n.literal)
	case kindShape:
		names := slices.Sorted(maps.Keys(n.fields))

		return fmt.Sprintf("shape{%s}", strings.Join(names, ", "))
	case kindArray:
		return fmt.Sprintf("array(%s)", describe(n.members[0]))
	case kindTuple:
		return fmt.Sprintf("tuple/%d", len(n.members))
	case kindUnion:
		return fmt.Sprintf("union/%d", len(n.members))
	case kindIntersection:
		return fmt.Sprintf("intersection/%d", len(n.members))
	case kindTaggedUnion:
		tags := slices.Sorted(maps.Keys(n.variants))

		return fmt.Sprintf("taggedUnion(%s: %s)", n.tagField, strings.Join(tags, " | "))
	case kindUndefined, kindNull, kindBoolean, kindNumber, kindString, kindInvalid:
	}

	return string(nodeName(n.kind))
}

// nodeName maps a nodeKind to its public Kind name.
func nodeName(k nodeKind) Kind {
	return Validator{node: &node{kind: k}}.Kind()
}

// Config is the diagnostics configuration for one Validate call. The zero
// Config produces no diagnostic output.
type Config struct {
	// LogFailures enables a trace line for every combinator that rejects a
	// value, naming the failing path and the offending value.
	LogFailures bool

	// Logger receives the trace lines. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option adjusts the diagnostics configuration of one Validate call.
type Option func(*Config)

// LogFailures enables failure tracing for one Validate call. Tracing is
// purely observational: the same input yields the same verdict whether or
// not it is enabled.
func LogFailures() Option {
	return func(cfg *Config) {
		cfg.LogFailures = true
	}
}

// Validate evaluates the validator against value. It returns a boolean for
// any possible input, never panics, and never mutates value. Options
// configure diagnostics only and cannot affect the verdict.
func (v Validator) Validate(value any, opts ...Option) bool {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	accepted := eval(v.node, value, "$", newTrace(cfg))

	validationsTotal.WithLabelValues(string(v.Kind()), strconv.FormatBool(accepted)).Inc()

	return accepted
}
