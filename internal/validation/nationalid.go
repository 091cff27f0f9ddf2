package validation

// NationalIDDigits is the number of digits in a CPF.
const NationalIDDigits = 11

// IsNationalID reports whether raw is a CPF with valid check digits.
// Formatting characters are ignored. Sequences of one repeated digit are
// rejected even though they satisfy the checksum.
func IsNationalID(raw string) bool {
	d := digitsOf(raw)
	if len(d) != NationalIDDigits || allSame(d) {
		return false
	}
	return checkDigit(d[:9]) == d[9] && checkDigit(d[:10]) == d[10]
}

// checkDigit computes the mod-11 verification digit over prefix. The first
// digit is weighted len(prefix)+1 and each following one a unit less.
func checkDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, n := range prefix {
		sum += n * weight
		weight--
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		rem = 0
	}
	return rem
}

func allSame(d []int) bool {
	for _, n := range d[1:] {
		if n != d[0] {
			return false
		}
	}
	return true
}

// digitsOf returns the decimal digits of s in order, dropping everything else.
func digitsOf(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

// StripNonDigits returns only the ASCII digits of s.
func StripNonDigits(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b = append(b, s[i])
		}
	}
	return string(b)
}
