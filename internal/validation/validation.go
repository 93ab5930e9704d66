// Package validation holds the stateless input validators shared by the
// account and collaboration services. All validators are pure functions over
// package-level compiled patterns; nothing here carries state per call.
package validation

import (
	"regexp"
	"unicode"
)

var (
	// emailPattern matches local@domain with a simple ASCII class; it is the
	// same pattern used to decide whether a collaborator identifier is an
	// email or a username, so both checks cannot disagree.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

	// usernamePattern: 3-30 chars of letters, digits, dots, underscores, hyphens.
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,30}$`)
)

// IsEmail reports whether identifier looks like an email address. Anything
// that does not match is treated as a username by the lookup paths.
func IsEmail(identifier string) bool {
	return emailPattern.MatchString(identifier)
}

// ValidEmail reports whether email is an acceptable address.
func ValidEmail(email string) bool {
	return email != "" && len(email) <= 255 && emailPattern.MatchString(email)
}

// ValidUsername reports whether username satisfies the username policy.
func ValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidPassword reports whether password satisfies the strength policy:
// at least 8 characters with an uppercase letter, a lowercase letter, a
// digit, and a special character.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
