package validation

// CheckKeys rejects payload keys that schema does not declare.
func CheckKeys(payload map[string]any, schema *Schema) error {
	unknown := make(map[string]struct{})

	for k := range payload {
		if !schema.Declares(k) {
			unknown[k] = struct{}{}
		}
	}

	if len(unknown) > 0 {
		return &UnknownFieldError{Keys: sortedKeys(unknown)}
	}

	return nil
}
