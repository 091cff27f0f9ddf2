package validation

import "strings"

// PhoneDigits is the maximum number of digits kept by MaskPhone.
const PhoneDigits = 11

// MaskNationalID formats the digits of raw as XXX.XXX.XXX-XX. Extra digits
// are truncated and separators appear only once a following digit exists,
// so partially typed values format progressively. Applying it to its own
// output returns the same string.
func MaskNationalID(raw string) string {
	d := truncate(StripNonDigits(raw), NationalIDDigits)

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// MaskPhone formats the digits of raw as (XX) XXXXX-XXXX, progressively.
func MaskPhone(raw string) string {
	d := truncate(StripNonDigits(raw), PhoneDigits)
	if len(d) <= 2 {
		return d
	}

	var b strings.Builder
	b.WriteString("(")
	b.WriteString(d[:2])
	b.WriteString(") ")
	rest := d[2:]
	if len(rest) > 5 {
		b.WriteString(rest[:5])
		b.WriteByte('-')
		b.WriteString(rest[5:])
	} else {
		b.WriteString(rest)
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
