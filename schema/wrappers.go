package schema

// Optional returns a validator accepting whatever inner accepts, plus the
// absent value. Wrapping a shape field in Optional makes the field
// non-required.
func Optional(inner Validator) Validator {
	return Union(inner, Undefined())
}

// Nullable returns a validator accepting whatever inner accepts, plus null.
func Nullable(inner Validator) Validator {
	return Union(inner, Null())
}

// Literals returns a validator accepting any value equal to one of the
// given constants, with Literal's canonical-JSON equality. Constants of
// mixed scalar kinds compose freely: Literals("auto", 0, false) accepts any
// of the three. No constants yields a validator that rejects everything.
func Literals(constants ...any) Validator {
	members := make([]Validator, len(constants))
	for i, constant := range constants {
		members[i] = Literal(constant)
	}

	return UnionMany(members)
}
