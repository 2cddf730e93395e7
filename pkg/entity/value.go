package entity

import (
	"encoding/json"
	"strconv"
)

// Unknown is the displayable placeholder for a value that could not be determined.
const Unknown = "Unknown"

// ValueKind enumerates the representations a Value can hold.
type ValueKind int

const (
	ValueUnknown ValueKind = iota
	ValueString
	ValueBool
	ValueNumber
)

// Value is the result of reading an attribute: a string, a boolean, a number,
// or Unknown. The zero Value is Unknown.
type Value struct {
	kind ValueKind
	s    string
	b    bool
	n    float64
}

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{kind: ValueNumber, n: n} }

// Kind reports which representation the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsUnknown reports whether no usable value was found.
func (v Value) IsUnknown() bool { return v.kind == ValueUnknown }

// Str returns the string and whether the value is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == ValueString }

// Bool returns the boolean and whether the value is a boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == ValueBool }

// Number returns the number and whether the value is a number.
func (v Value) Number() (float64, bool) { return v.n, v.kind == ValueNumber }

// Any returns the underlying string, bool or float64, or the Unknown string.
func (v Value) Any() any {
	switch v.kind {
	case ValueString:
		return v.s
	case ValueBool:
		return v.b
	case ValueNumber:
		return v.n
	}
	return Unknown
}

// String formats the value for display.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return v.s
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	}
	return Unknown
}

// MarshalJSON encodes the value as a bare JSON string, boolean or number.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}
