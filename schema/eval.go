package schema

import (
	"bytes"
	"fmt"
	"reflect"
)

// eval is the single recursive interpreter over the validator tree. It is
// total: it returns a verdict for any node/value pair and never panics.
// Recursion depth equals the nesting depth of the schema, which is fixed at
// construction time (schemas are acyclic), not influenced by the input.
func eval(n *node, value any, path string, tr trace) bool {
	if n == nil {
		tr.reject(path, "a constructed validator (zero Validator rejects everything)", value)

		return false
	}

	switch n.kind {
	case kindUndefined:
		return evalPrimitive(n, valueAbsent, value, path, tr)
	case kindNull:
		return evalPrimitive(n, valueNull, value, path, tr)
	case kindBoolean:
		return evalPrimitive(n, valueBoolean, value, path, tr)
	case kindNumber:
		return evalPrimitive(n, valueNumber, value, path, tr)
	case kindString:
		return evalPrimitive(n, valueString, value, path, tr)
	case kindLiteral:
		return evalLiteral(n, value, path, tr)
	case kindShape:
		return evalShape(n, value, path, tr)
	case kindArray:
		return evalArray(n, value, path, tr)
	case kindTuple:
		return evalTuple(n, value, path, tr)
	case kindUnion:
		return evalUnion(n, value, path, tr)
	case kindIntersection:
		return evalIntersection(n, value, path, tr)
	case kindTaggedUnion:
		return evalTaggedUnion(n, value, path, tr)
	case kindInvalid:
	}

	tr.reject(path, "a constructed validator", value)

	return false
}

func evalPrimitive(n *node, want valueKind, value any, path string, tr trace) bool {
	if kindOf(value) == want {
		return true
	}

	tr.reject(path, string(nodeName(n.kind)), value)

	return false
}

// evalLiteral compares the value's canonical JSON form against the
// constant's. Constants without a canonical form match nothing, as do values
// without one.
func evalLiteral(n *node, value any, path string, tr trace) bool {
	if n.literal != nil {
		if got, ok := canonical(value); ok && bytes.Equal(n.literal, got) {
			return true
		}
	}

	tr.reject(path, describe(n), value)

	return false
}

// evalShape rejects anything that is not an object, then applies field
// semantics.
func evalShape(n *node, value any, path string, tr trace) bool {
	obj, ok := objectFields(value)
	if !ok {
		tr.reject(path, "object", value)

		return false
	}

	return evalFields(n.fields, obj, path, tr)
}

// evalFields applies shape semantics to an object's fields: every declared
// field's value (Absent when missing) must satisfy its validator.
// Undeclared fields on the input are ignored, so shapes describe a lower
// bound and intersect cleanly. Evaluation stops at the first failing field;
// declared fields are checked in map iteration order, which is deliberately
// unordered.
func evalFields(fields map[string]*node, obj map[string]any, path string, tr trace) bool {
	for name, child := range fields {
		fieldValue, present := obj[name]
		if !present {
			fieldValue = Absent
		}

		if !eval(child, fieldValue, fmt.Sprintf("%s['%s']", path, name), tr) {
			tr.reject(path, fmt.Sprintf("field '%s' to validate", name), fieldValue)

			return false
		}
	}

	return true
}

// evalArray is a universal quantifier over the elements: the empty sequence
// accepts, any failing element rejects the whole sequence.
func evalArray(n *node, value any, path string, tr trace) bool {
	elems, ok := sequenceValues(value)
	if !ok {
		tr.reject(path, "sequence", value)

		return false
	}

	for i, elem := range elems {
		if !eval(n.members[0], elem, fmt.Sprintf("%s[%d]", path, i), tr) {
			tr.reject(path, fmt.Sprintf("element %d to validate", i), elem)

			return false
		}
	}

	return true
}

// evalTuple rejects on any length mismatch before inspecting elements, then
// pairs the i-th element with the i-th validator only.
func evalTuple(n *node, value any, path string, tr trace) bool {
	elems, ok := sequenceValues(value)
	if !ok || len(elems) != len(n.members) {
		tr.reject(path, fmt.Sprintf("sequence of length %d", len(n.members)), value)

		return false
	}

	for i, member := range n.members {
		if !eval(member, elems[i], fmt.Sprintf("%s[%d]", path, i), tr) {
			tr.reject(path, fmt.Sprintf("element %d to validate", i), elems[i])

			return false
		}
	}

	return true
}

// evalUnion accepts as soon as any member accepts. Members are evaluated
// muted: when all of them reject, only the overall failure is traced, not
// each candidate branch. An empty union rejects everything.
func evalUnion(n *node, value any, path string, tr trace) bool {
	quiet := tr.muted()

	for _, member := range n.members {
		if eval(member, value, path, quiet) {
			return true
		}
	}

	tr.reject(path, describe(n), value)

	return false
}

// evalIntersection evaluates every member even after one has rejected, so
// enabling diagnostics always traces the same complete set of failures. An
// empty intersection accepts everything.
func evalIntersection(n *node, value any, path string, tr trace) bool {
	accepted := true

	for _, member := range n.members {
		if !eval(member, value, path, tr) {
			accepted = false
		}
	}

	if !accepted {
		tr.reject(path, describe(n), value)
	}

	return accepted
}

// evalTaggedUnion dispatches on the tag field's value: exactly one variant's
// fields are checked, with the same missing-field-as-Absent rule as a shape.
// A missing tag field or a tag value naming no variant rejects without
// inspecting any variant.
func evalTaggedUnion(n *node, value any, path string, tr trace) bool {
	obj, ok := objectFields(value)
	if !ok {
		tr.reject(path, fmt.Sprintf("object with tag field '%s'", n.tagField), value)

		return false
	}

	tagValue, present := obj[n.tagField]
	if !present {
		tr.reject(path, fmt.Sprintf("object with tag field '%s'", n.tagField), value)

		return false
	}

	key, ok := tagKey(tagValue)
	if !ok {
		tr.reject(fmt.Sprintf("%s['%s']", path, n.tagField), "string, number, or boolean tag value", tagValue)

		return false
	}

	variant, ok := n.variants[key]
	if !ok {
		tr.reject(fmt.Sprintf("%s['%s']", path, n.tagField), fmt.Sprintf("one of the tags of %s", describe(n)), tagValue)

		return false
	}

	return evalFields(variant, obj, path, tr)
}

// tagKey folds a tag value to the string key used for variant lookup.
// Strings are used verbatim; numbers and booleans fold to their canonical
// JSON text ("42", "true"), matching the key coercion the schema author
// wrote the variant map against. Other kinds dispatch to no variant.
func tagKey(value any) (string, bool) {
	switch kindOf(value) {
	case valueString:
		if s, ok := value.(string); ok {
			return s, true
		}

		valOf := reflect.ValueOf(value)
		for valOf.Kind() == reflect.Pointer {
			valOf = valOf.Elem()
		}

		return valOf.String(), true
	case valueNumber, valueBoolean:
		if canon, ok := canonical(value); ok {
			return string(canon), true
		}
	case valueAbsent, valueNull, valueSequence, valueObject, valueOther:
	}

	return "", false
}
