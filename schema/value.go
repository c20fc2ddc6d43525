package schema

import (
	"encoding/json"
	"reflect"
)

// AbsentValue is the type of the Absent sentinel. It occupies zero bytes and
// has no state; only its presence matters.
type AbsentValue struct{}

// Absent stands in for a value that is not present at all, as distinct from
// a value that is present but null. Shape and tagged-union validators feed
// Absent to the child validator of any declared field that is missing from
// the input object, so a field is required unless its validator also accepts
// Absent (see Optional).
var Absent = AbsentValue{}

// valueKind classifies an arbitrary input value into the small set of kinds
// the evaluator distinguishes.
type valueKind int

const (
	valueOther valueKind = iota
	valueAbsent
	valueNull
	valueBoolean
	valueNumber
	valueString
	valueSequence
	valueObject
)

// isNullish returns true if the value is a literal nil or a typed value
// holding a nil (nil pointer, nil map, nil slice, and so on).
func isNullish(value any) bool {
	if value == nil {
		return true
	}

	valOf := reflect.ValueOf(value)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// kindOf classifies value. Pointers are followed to the value they point at;
// a nil at any level classifies as null. Values the engine has no notion of
// (channels, functions, complex numbers, ...) classify as valueOther and
// fail every validator.
func kindOf(value any) valueKind {
	if _, ok := value.(AbsentValue); ok {
		return valueAbsent
	}

	if isNullish(value) {
		return valueNull
	}

	// json.Number is a string under reflection but semantically a number.
	if _, ok := value.(json.Number); ok {
		return valueNumber
	}

	valOf := reflect.ValueOf(value)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Bool:
		return valueBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return valueNumber
	case reflect.String:
		return valueString
	case reflect.Slice, reflect.Array:
		return valueSequence
	case reflect.Map:
		if valOf.Type().Key().Kind() == reflect.String {
			return valueObject
		}

		return valueOther
	case reflect.Struct:
		return valueObject
	case reflect.Pointer:
		return kindOf(valOf.Elem().Interface())
	}

	return valueOther
}

// objectFields extracts the named fields of an object-like value as a
// map[string]any. String-keyed maps are read directly; structs (and pointers
// to them) are coerced through their canonical JSON form. Returns false for
// anything that is not an object.
func objectFields(value any) (map[string]any, bool) {
	if kindOf(value) != valueObject {
		return nil, false
	}

	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	valOf := reflect.ValueOf(value)
	for valOf.Kind() == reflect.Pointer {
		valOf = valOf.Elem()
	}

	if valOf.Kind() == reflect.Map {
		fields := make(map[string]any, valOf.Len())

		iter := valOf.MapRange()
		for iter.Next() {
			fields[iter.Key().String()] = iter.Value().Interface()
		}

		return fields, true
	}

	return toJSONMap(valOf.Interface())
}

// sequenceValues extracts the elements of a sequence-like value (slice or
// array, or a pointer to one) in order. Returns false for anything that is
// not a sequence.
func sequenceValues(value any) ([]any, bool) {
	if kindOf(value) != valueSequence {
		return nil, false
	}

	if s, ok := value.([]any); ok {
		return s, true
	}

	valOf := reflect.ValueOf(value)
	for valOf.Kind() == reflect.Pointer {
		valOf = valOf.Elem()
	}

	elems := make([]any, valOf.Len())
	for i := range elems {
		elems[i] = valOf.Index(i).Interface()
	}

	return elems, true
}
