package auth

import (
	"strings"
	"unicode"
)

// ValidatePasswordPolicy checks the signup password rules and returns one
// human-readable problem per violated rule, in a stable order.
func ValidatePasswordPolicy(password string) []string {
	var problems []string
	if len(password) < 6 {
		problems = append(problems, "Password must be at least 6 characters long")
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		problems = append(problems, "Must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		problems = append(problems, "Must contain at least one number")
	}
	return problems
}
