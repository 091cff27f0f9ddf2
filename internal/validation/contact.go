package validation

import "regexp"

var (
	emailPattern      = regexp.MustCompile(`^[\w+.%-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	postalCodePattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

// IsPhone reports whether raw holds a landline (10) or mobile (11) number
// including the area code, ignoring formatting.
func IsPhone(raw string) bool {
	n := len(StripNonDigits(raw))
	return n == 10 || n == 11
}

// IsEmailShape reports whether raw looks like local@domain.tld. It checks
// shape only; deliverability is not considered.
func IsEmailShape(raw string) bool {
	return emailPattern.MatchString(raw)
}

// IsPostalCodeShape reports whether raw is a CEP: five digits, an optional
// hyphen, then three digits.
func IsPostalCodeShape(raw string) bool {
	return postalCodePattern.MatchString(raw)
}
