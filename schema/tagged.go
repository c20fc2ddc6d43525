package schema

// TaggedUnion returns a validator that dispatches on the value of tagField:
// it reads the tag field from the input object, looks up the variant
// declared under that tag value, and validates the input against exactly
// that variant's fields (with the same missing-field-as-Absent rule as
// Shape). Inputs that are not objects, lack the tag field, or carry a tag
// value naming no variant are rejected without inspecting any variant.
//
// Compared to a plain union of shapes this gives O(1) dispatch and sharper
// diagnostics ("unknown tag" rather than "matched no member"), because only
// the named variant is ever evaluated.
//
// Variant lookup is string-keyed with no partial matching. A string tag
// value is used verbatim; number and boolean tag values fold to their
// canonical JSON text ("42", "true"). Each variant conventionally declares
// tagField itself as Literal(tag) so that the declared schema stays
// consistent with the dispatch key; the engine trusts the tag value as the
// dispatch key and does not verify that consistency.
//
// The variant maps are copied; mutating them after the call does not affect
// the returned validator.
func TaggedUnion(tagField string, variants map[string]Fields) Validator {
	variantNodes := make(map[string]map[string]*node, len(variants))
	for tag, fields := range variants {
		variantNodes[tag] = fieldNodes(fields)
	}

	return Validator{node: &node{
		kind:     kindTaggedUnion,
		tagField: tagField,
		variants: variantNodes,
	}}
}
