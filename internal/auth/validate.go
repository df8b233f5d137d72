package auth

import "unicode"

const (
	usernameMinLength = 3
	usernameMaxLength = 20
	passwordMinLength = 8
)

// ValidateUsername checks the registration rules for usernames: 3 to 20
// characters, letters and digits only.
func ValidateUsername(username string) error {
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return &InvalidFormatError{Reason: "username must be between 3 and 20 characters long"}
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return &InvalidFormatError{Reason: "username must contain only letters and digits"}
		}
	}
	return nil
}

// ValidatePassword checks the registration rules for passwords: at least 8
// characters with at least one uppercase letter, one lowercase letter and
// one digit.
func ValidatePassword(password []byte) error {
	if len(password) < passwordMinLength {
		return &InvalidFormatError{Reason: "password must be at least 8 characters long"}
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range string(password) {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return &InvalidFormatError{Reason: "password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &InvalidFormatError{Reason: "password must contain at least one lowercase letter"}
	}
	if !hasDigit {
		return &InvalidFormatError{Reason: "password must contain at least one digit"}
	}
	return nil
}
