package desktop

import "strings"

// fieldCodes are the desktop-entry Exec substitution markers. They stand in
// for file lists, device ids and similar launch-context values a standalone
// launcher never has, so tokens carrying them are dropped rather than passed
// literally to the spawned process.
var fieldCodes = []string{"%u", "%U", "%f", "%F", "%d", "%D", "%n", "%N", "%i", "%c", "%k"}

// SanitizeCommand removes every whitespace-delimited token that contains a
// field code and rejoins the survivors with single spaces. The result may be
// empty when the command consisted only of placeholder tokens.
func SanitizeCommand(command string) string {
	var kept []string
	for _, part := range strings.Fields(command) {
		if containsFieldCode(part) {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, " ")
}

func containsFieldCode(token string) bool {
	for _, code := range fieldCodes {
		if strings.Contains(token, code) {
			return true
		}
	}
	return false
}
