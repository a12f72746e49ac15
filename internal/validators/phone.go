package validators

import "unicode"

// IsPhoneValid aceita formatos como "(11) 98765-4321"; exige entre 8 e
// 13 dígitos, o resto é máscara
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '+':
			// máscara permitida
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 13
}
