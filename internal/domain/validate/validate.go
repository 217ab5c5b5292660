// Package validate holds the pure input checks for account registration.
// All three functions are side-effect free and report via booleans; the
// orchestrating service maps a false result to its typed validation error.
package validate

import (
	"regexp"
	"unicode/utf8"
)

// minPasswordLength is a character count, not a byte count, so multi-byte
// input is measured correctly.
const minPasswordLength = 10

// emailPattern accepts local@domain.tld where the local part is one or more
// of [a-z0-9_+], optionally extended with dot-separated segments, the domain
// is dot/hyphen-separated alphanumeric labels, and the TLD is 2-6 lowercase
// letters. The pattern is anchored at the start only: trailing garbage after
// a valid prefix is accepted. That laxity is inherited from the original
// contract and callers depend on it, so it stays.
var emailPattern = regexp.MustCompile(`^([a-z0-9_+]([a-z0-9_+.]*[a-z0-9_+])?)@([a-z0-9]+([\-.][a-z0-9]+)*\.[a-z]{2,6})`)

// IsValidEmail reports whether s looks like an email address. Matching is
// case-sensitive on lowercase input; callers normalize before checking.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPasswordLongEnough reports whether s has at least ten characters.
func IsPasswordLongEnough(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLength
}

// PasswordsMatch reports whether the password and its confirmation are equal.
func PasswordsMatch(a, b string) bool {
	return a == b
}
