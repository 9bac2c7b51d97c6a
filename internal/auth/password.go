package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// passwordSymbols is the punctuation set the policy accepts.
const passwordSymbols = "!@#$%^&*"

// HashPassword returns a salted bcrypt hash of the plaintext.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidatePassword enforces the password policy: 8-16 characters, at least one
// uppercase letter and at least one symbol from passwordSymbols. Length is
// counted in runes, not bytes.
func ValidatePassword(plain string) bool {
	if n := utf8.RuneCountInString(plain); n < 8 || n > 16 {
		return false
	}
	var hasUpper, hasSymbol bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	return hasUpper && hasSymbol
}
