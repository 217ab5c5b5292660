package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a.b+c@sub.example.co",
		"first_last@domain.io",
		"a@b.co",
		"user+tag@my-host.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected valid: %s", email)
	}

	invalid := []string{
		"bad",
		"@nodomain.com",
		"user@",
		"",
		"Upper@example.com", // callers must normalize first
		"user@domain",
		".user@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected invalid: %s", email)
	}
}

func TestIsValidEmail_AcceptsTrailingGarbage(t *testing.T) {
	// The pattern is anchored at the start only; a valid prefix is enough.
	assert.True(t, IsValidEmail("user@example.com garbage"))
	assert.True(t, IsValidEmail("user@example.commmmmm"))
}

func TestIsPasswordLongEnough(t *testing.T) {
	assert.False(t, IsPasswordLongEnough(""))
	assert.False(t, IsPasswordLongEnough("short"))
	assert.False(t, IsPasswordLongEnough("123456789")) // nine characters
	assert.True(t, IsPasswordLongEnough("1234567890"))
	assert.True(t, IsPasswordLongEnough("password1234"))

	// Character count, not byte count: ten multi-byte runes pass.
	assert.True(t, IsPasswordLongEnough("pässwörter"))
	assert.False(t, IsPasswordLongEnough("pässwört"))
}

func TestPasswordsMatch(t *testing.T) {
	assert.True(t, PasswordsMatch("password1234", "password1234"))
	assert.False(t, PasswordsMatch("password1234", "password1235"))
	assert.False(t, PasswordsMatch("password1234", ""))
	assert.True(t, PasswordsMatch("", ""))
}
