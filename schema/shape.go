package schema

// Shape returns a validator accepting any non-null object whose declared
// fields all satisfy their validators. A declared field missing from the
// input is fed to its validator as Absent, so every field is required unless
// its validator accepts Absent (wrap it in Optional to make it so).
//
// Shapes have superset semantics: fields present on the input but not
// declared here are ignored. A shape describes a lower bound on an object,
// not an exact schema, precisely so that several shapes can be intersected
// against one wider object.
//
// The fields map is copied; mutating it after the call does not affect the
// returned validator.
func Shape(fields Fields) Validator {
	return Validator{node: &node{kind: kindShape, fields: fieldNodes(fields)}}
}

// fieldNodes copies a field definition into the node representation.
func fieldNodes(fields Fields) map[string]*node {
	nodes := make(map[string]*node, len(fields))
	for name, child := range fields {
		nodes[name] = child.node
	}

	return nodes
}
