package schema

// Union returns a validator accepting values that satisfy a or b (logical
// OR). Evaluation may stop at the first accepting member; validators are
// pure, so whether the second member runs is unobservable.
func Union(a, b Validator) Validator {
	return UnionMany([]Validator{a, b})
}

// UnionMany generalizes Union to arbitrary arity: the result accepts iff at
// least one member accepts. The empty union rejects everything (no member
// can accept). When all members reject, diagnostics report only the overall
// failure, not each candidate branch.
func UnionMany(members []Validator) Validator {
	return Validator{node: &node{kind: kindUnion, members: memberNodes(members)}}
}

// Intersection returns a validator accepting values that satisfy both a and
// b (logical AND).
func Intersection(a, b Validator) Validator {
	return IntersectMany([]Validator{a, b})
}

// IntersectMany generalizes Intersection to arbitrary arity: the result
// accepts iff every member accepts. The empty intersection accepts
// everything (vacuous truth, the identity for AND). Every member is
// evaluated even after one rejects, so enabled diagnostics always trace the
// same complete set of member failures.
func IntersectMany(members []Validator) Validator {
	return Validator{node: &node{kind: kindIntersection, members: memberNodes(members)}}
}
