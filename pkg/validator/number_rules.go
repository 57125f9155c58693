package validator

// Integer covers the integer kinds used by config fields, time.Duration
// included.
type Integer interface {
	~int | ~int32 | ~int64
}

// Positive requires value > 0.
func Positive[T Integer](field string, value T) Rule {
	return Rule{
		Check: func() bool { return value > 0 },
		Error: ValidationError{
			Field:             field,
			Message:           "must be positive",
			TranslationKey:    "validation.positive",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// NonNegative requires value >= 0.
func NonNegative[T Integer](field string, value T) Rule {
	return Rule{
		Check: func() bool { return value >= 0 },
		Error: ValidationError{
			Field:             field,
			Message:           "must not be negative",
			TranslationKey:    "validation.non_negative",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// When returns rule unchanged if cond holds and a passing rule otherwise.
func When(cond bool, rule Rule) Rule {
	if cond {
		return rule
	}
	return Rule{Check: func() bool { return true }, Error: rule.Error}
}
