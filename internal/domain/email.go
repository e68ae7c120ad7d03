package domain

import "strings"

// ValidEmail reports whether email passes the form-level grammar used across
// all three capture forms: a single @ with non-empty sides, a dotted domain,
// no whitespace, and no leading, trailing or consecutive dots in the address.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	if strings.Contains(email, "..") {
		return false
	}

	local, domainPart := email[:at], email[at+1:]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if !strings.Contains(domainPart, ".") ||
		strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return false
	}

	return true
}
