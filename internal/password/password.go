package password

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the minimum accepted password length.
const MinLength = 8

// Validate reports whether a candidate password is acceptable: at least
// MinLength characters with at least one lowercase letter, one uppercase
// letter, and one digit. There is no symbol requirement and no maximum length.
func Validate(pw string) bool {
	if len(pw) < MinLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Hash returns the bcrypt hash of pw at the default cost.
func Hash(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Check reports whether pw matches the stored bcrypt hash.
func Check(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
