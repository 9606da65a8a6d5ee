package validation

import (
	"encoding/json"
)

// Unset is the reserved value clients send to clear an optional field.
const Unset = -1

// IsUnset reports whether v is the Unset sentinel in any numeric representation
// a decoded payload may carry.
func IsUnset(v any) bool {
	switch t := v.(type) {
	case int:
		return t == Unset
	case int8:
		return t == Unset
	case int16:
		return t == Unset
	case int32:
		return t == Unset
	case int64:
		return t == Unset
	case float32:
		return t == Unset
	case float64:
		return t == Unset
	case json.Number:
		return t.String() == "-1"
	default:
		return false
	}
}

// Nonify returns nil for the Unset sentinel and v otherwise.
func Nonify(v any) any {
	if IsUnset(v) {
		return nil
	}

	return v
}

// Normalize applies Nonify to every value of payload. The input is not modified.
func Normalize(payload map[string]any) Payload {
	out := make(Payload, len(payload))
	for k, v := range payload {
		out[k] = Nonify(v)
	}

	return out
}
