// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address so uniqueness
// checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that an email address is plausibly formed.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidatePassword checks if a password meets minimum requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// ValidateDogName checks a dog profile name.
func ValidateDogName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("dog name is required")
	}
	if len(name) > 60 {
		return fmt.Errorf("dog name must not exceed 60 characters")
	}
	return nil
}

// ValidateDogAge checks a dog profile age.
func ValidateDogAge(age int) error {
	if age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	if age > 40 {
		return fmt.Errorf("age is implausibly large")
	}
	return nil
}
