package validation

const (
	// MinTTL is the lowest accepted time-to-live in seconds.
	MinTTL = 300

	// MaxTTL is the highest accepted time-to-live in seconds.
	MaxTTL = 68400
)

// ValidateTTL checks a normalized ttl. A nil ttl is always valid.
func ValidateTTL(field string, ttl *int64) error {
	if ttl == nil {
		return nil
	}

	return ValidateRange(field, *ttl, MinTTL, MaxTTL)
}

// ValidateRange checks min <= v <= max.
func ValidateRange(field string, v, minimum, maximum int64) error {
	if v < minimum || v > maximum {
		return &RangeError{Field: field, Value: v, Min: minimum, Max: maximum}
	}

	return nil
}
