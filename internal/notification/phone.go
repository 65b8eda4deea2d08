package notification

import "strings"

// NormalizePhone cleans a phone number for WhatsApp delivery: it strips
// every character except digits and a leading +. Numbers without a
// country code get defaultCountryCode prepended, dropping one leading
// zero from the local part.
func NormalizePhone(phone, defaultCountryCode string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if !strings.HasPrefix(cleaned, "+") {
		cleaned = defaultCountryCode + strings.TrimPrefix(cleaned, "0")
	}
	return cleaned
}
