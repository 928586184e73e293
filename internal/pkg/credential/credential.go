// Package credential provides password hashing and the field sanitizers
// applied to user-supplied text before persistence. Sanitization is a
// normalization step, not a security boundary.
package credential

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Hash derives a salted one-way digest of plaintext with a fixed cost.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. Any failure, including
// a malformed digest, yields false; it never panics.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// Email normalizes an email address: trimmed and lowercased. Uniqueness is
// case-insensitive, so every email is stored in this form.
func Email(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Name trims a display name and strips control and invisible characters.
func Name(raw string) string {
	trimmed := strings.TrimSpace(raw)
	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// passwordSymbols is the fixed set accepted by the complexity policy.
const passwordSymbols = "!@#$%^&*()-_=+[]{};:'\",.<>/?\\|`~"

// StrongPassword reports whether p satisfies the staff complexity policy:
// at least 8 characters with one upper, one lower, one digit, and one
// symbol from the fixed set.
func StrongPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

var (
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashRuns   = regexp.MustCompile(`-{2,}`)
)

// Slug derives a URL-safe slug: lowercase, spaces and underscores become
// dashes, everything outside [a-z0-9-] is dropped, dash runs collapse.
func Slug(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
