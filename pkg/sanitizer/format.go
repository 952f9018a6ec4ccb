package sanitizer

import "strings"

// NormalizeEmail lowercases and trims the address and collapses repeated
// dots in the local part. Input without exactly one "@" is only trimmed and
// lowercased, leaving the "email" rule to reject it.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone strips everything but digits, keeping a leading "+".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}
