package auth

import (
	"errors"
	"regexp"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// Validation errors carry the exact user-facing message returned to clients.
var (
	ErrFullnameTooShort = errors.New("Full name must be greater than 3 characters.")
	ErrInvalidEmail     = errors.New("Invalid email. Please check your input.")
	ErrWeakPassword     = errors.New("Password must be 6-20 characters and include numeric, uppercase, and lowercase letters.")
)

// ValidateSignup checks the submitted fields in order (fullname, email,
// password) and returns the first failure.
func ValidateSignup(fullname, email, password string) error {
	if len(fullname) < 3 {
		return ErrFullnameTooShort
	}
	if email == "" || !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	if !validPassword(password) {
		return ErrWeakPassword
	}
	return nil
}

// validPassword requires 6-20 characters with at least one digit, one
// lowercase letter, and one uppercase letter.
func validPassword(password string) bool {
	if len(password) < 6 || len(password) > 20 {
		return false
	}
	var digit, lower, upper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}
	return digit && lower && upper
}
