package schema

// Array returns a validator accepting any sequence (slice or array) whose
// elements all satisfy elem. The empty sequence always accepts; anything
// that is not a sequence rejects.
func Array(elem Validator) Validator {
	return Validator{node: &node{kind: kindArray, members: []*node{elem.node}}}
}

// Tuple returns a validator accepting a sequence of exactly len(elems)
// elements where the i-th element satisfies the i-th validator. Any length
// mismatch rejects immediately, without inspecting elements; pairing never
// wraps, truncates, or reorders.
func Tuple(elems ...Validator) Validator {
	return Validator{node: &node{kind: kindTuple, members: memberNodes(elems)}}
}

// memberNodes copies a validator list into the node representation.
func memberNodes(validators []Validator) []*node {
	nodes := make([]*node, len(validators))
	for i, v := range validators {
		nodes[i] = v.node
	}

	return nodes
}
