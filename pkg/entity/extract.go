package entity

// Extract returns the current value of the named attribute on e.
//
// The first attribute whose name matches exactly is used. Its states are
// consulted in a fixed order: a non-empty string state, then a boolean state
// (false included), then a numeric state (zero included). Anything else,
// including a nil entity or a missing attribute collection, yields Unknown.
func Extract(e *Entity, name string) Value {
	if e == nil || e.Attributes == nil {
		return Value{}
	}

	var attr *Attribute
	for i := range e.Attributes {
		if e.Attributes[i].Name == name {
			attr = &e.Attributes[i]
			break
		}
	}
	if attr == nil {
		return Value{}
	}

	// An empty string state falls through, a false or zero state does not.
	if attr.StringState != nil && *attr.StringState != "" {
		return StringValue(*attr.StringState)
	}
	if attr.BooleanState != nil {
		return BoolValue(*attr.BooleanState)
	}
	if attr.NumericState != nil {
		return NumberValue(*attr.NumericState)
	}
	return Value{}
}
