package model

import "strings"

// FormatRUT normalizes a Chilean RUT to digits-dash-verifier form,
// e.g. "12.345.678-k" -> "12345678-K".
func FormatRUT(rut string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == 'k' || r == 'K':
			return 'K'
		}
		return -1
	}, rut)
	if len(cleaned) < 2 {
		return cleaned
	}
	return cleaned[:len(cleaned)-1] + "-" + cleaned[len(cleaned)-1:]
}
