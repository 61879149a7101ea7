package kernel

import "strings"

// defaultCountryCode is the country code assumed for domestic-looking numbers.
// The digit-length heuristic below is only correct for that market; numbers
// from elsewhere pass through with a bare "+" prefix.
const defaultCountryCode = "44"

// Phone is a normalized phone number in loose E.164 form ("+" plus digits).
// The zero value means "no phone supplied".
type Phone struct {
	value string
}

// NewPhone normalizes a raw phone string. An empty or digit-free input yields
// the zero Phone rather than an error: phone is always optional contact info.
func NewPhone(raw string) Phone {
	return Phone{value: NormalizePhone(raw)}
}

// NormalizePhone strips non-digits and applies a best-effort country-code
// heuristic:
//   - numbers already starting with the country code pass through
//   - 11 digits starting with the trunk prefix "0" have it replaced
//   - 10 digits get the country code prepended
//   - anything else is kept as-is behind a "+"
//
// TODO: replace with a proper phone library once international traffic
// matters; the length checks assume the default market's numbering plan.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(d, defaultCountryCode):
		return "+" + d
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		return "+" + defaultCountryCode + d[1:]
	case len(d) == 10:
		return "+" + defaultCountryCode + d
	default:
		return "+" + d
	}
}

// String returns the normalized number, or "" when unset.
func (p Phone) String() string {
	return p.value
}

// IsZero reports whether a phone was supplied.
func (p Phone) IsZero() bool {
	return p.value == ""
}

// IsEqual compares two phones for equality.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}
