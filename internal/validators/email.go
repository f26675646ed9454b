package validators

import (
	"net/mail"
	"strings"
)

// IsEmail checks the address syntax only; no DNS lookups are made.
func IsEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// ParseAddress also accepts "Name <a@b>"; only the bare address is valid here.
	return addr.Address == email && strings.Contains(email[at+1:], ".")
}
