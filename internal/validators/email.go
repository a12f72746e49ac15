package validators

import "strings"

// IsEmailFormatValid faz a checagem mínima de formato; entrega de
// verdade é problema do provedor
func IsEmailFormatValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	return true
}
