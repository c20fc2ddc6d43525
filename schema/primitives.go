package schema

// Undefined returns a validator accepting only the absent value (the Absent
// sentinel, or a declared shape field missing from the input object).
func Undefined() Validator {
	return Validator{node: &node{kind: kindUndefined}}
}

// Null returns a validator accepting only null: an untyped nil or a typed
// value holding a nil (nil pointer, nil map, nil slice, ...).
func Null() Validator {
	return Validator{node: &node{kind: kindNull}}
}

// Boolean returns a validator accepting boolean values.
func Boolean() Validator {
	return Validator{node: &node{kind: kindBoolean}}
}

// Number returns a validator accepting numeric values of any Go numeric
// kind, plus json.Number. There is no coercion: the string "42" is not a
// number.
func Number() Validator {
	return Validator{node: &node{kind: kindNumber}}
}

// String returns a validator accepting string values.
func String() Validator {
	return Validator{node: &node{kind: kindString}}
}

// Literal returns a validator accepting values equal to constant, compared
// by canonical JSON form. It is intended for scalar constants (strings,
// numbers, booleans); composite constants are compared best-effort through
// the same canonical form and carry no equality guarantee beyond it. A
// constant with no canonical form (a channel, a function, cyclic data)
// yields a validator that matches nothing.
func Literal(constant any) Validator {
	n := &node{kind: kindLiteral}

	if canon, ok := canonical(constant); ok {
		n.literal = canon
	}

	return Validator{node: n}
}
