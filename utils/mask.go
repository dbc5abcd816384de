package utils

import "strings"

// MaskEmail partially obscures an email address so the delivery target can
// be confirmed without revealing it: "alice@example.com" -> "a***@example.com".
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}

	local := []rune(email[:at])
	return string(local[0]) + "***" + email[at:]
}
