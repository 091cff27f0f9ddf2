package validation

// Policy holds the registration rules that are organisational decisions
// rather than data formats.
type Policy struct {
	// MinNameLength is the minimum number of characters in the trimmed name.
	MinNameLength int
	// MinAge is the minimum volunteer age, in the coarse sense of ComputeAge.
	MinAge int
}

// DefaultPolicy returns the policy the site launched with.
func DefaultPolicy() Policy {
	return Policy{
		MinNameLength: 3,
		MinAge:        16,
	}
}
