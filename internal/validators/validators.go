package validators

import (
	"net"
	"strings"
)

// IsPhoneValid accepts the loose formats customers are entered with
// (digits, spaces, dashes, parentheses, optional leading +) and requires
// at least 7 digits overall.
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range strings.TrimSpace(phone) {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+' || r == '.':
		default:
			return false
		}
	}
	return digits >= 7
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
