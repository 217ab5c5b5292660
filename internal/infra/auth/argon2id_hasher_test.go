package auth

import (
	"strings"
	"testing"

	"passport/config"
	"passport/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The concrete hasher satisfies both the full service contract (checked at
// the constructor's return type) and the narrow contract the entity consumes.
var _ entity.PasswordHasher = (*argon2idHasher)(nil)

// testHasher uses reduced work parameters so the suite stays fast.
func testHasher() *argon2idHasher {
	return &argon2idHasher{params: argon2idParams{
		memoryKiB:   16 * 1024,
		iterations:  1,
		parallelism: 1,
		saltLength:  16,
		keyLength:   32,
	}}
}

func TestArgon2idHasher_Hash(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("password1234")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password1234", hash)
	assert.NotContains(t, hash, "password1234")

	// Self-describing PHC format.
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	assert.True(t, hasher.Check("password1234", hash))
}

func TestArgon2idHasher_SaltFreshness(t *testing.T) {
	hasher := testHasher()

	first, err := hasher.Hash("password1234")
	require.NoError(t, err)
	second, err := hasher.Hash("password1234")
	require.NoError(t, err)

	// A fresh salt per call means identical inputs never share a hash.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("password1234", first))
	assert.True(t, hasher.Check("password1234", second))
}

func TestArgon2idHasher_Check(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("password1234")
	require.NoError(t, err)

	assert.True(t, hasher.Check("password1234", hash))
	assert.False(t, hasher.Check("password1235", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestArgon2idHasher_CheckMalformedHash(t *testing.T) {
	hasher := testHasher()

	// Parse failure and digest mismatch are indistinguishable to callers.
	malformed := []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=16384,t=1,p=1$short",
		"$argon2id$v=18$m=16384,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2i$v=19$m=16384,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdHNhbHRzYWx0c2FsdA$aGFzaA",
		"$argon2id$v=19$m=16384,t=1,p=1$!!!$aGFzaA",
	}
	for _, hash := range malformed {
		assert.False(t, hasher.Check("password1234", hash), "hash: %q", hash)
	}
}

func TestArgon2idHasher_CheckRefusesOversizedParams(t *testing.T) {
	hasher := testHasher()

	// Parameters far above our configured limits are rejected before any
	// key derivation happens.
	oversized := "$argon2id$v=19$m=1048576,t=64,p=8$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaA"
	assert.False(t, hasher.Check("password1234", oversized))
}

func TestNewArgon2idHasher_ConfigOverrides(t *testing.T) {
	cfg := &config.Config{
		Argon2: &config.Argon2Config{
			MemoryKiB:  32 * 1024,
			Iterations: 2,
		},
	}

	hasher, ok := NewArgon2idHasher(cfg).(*argon2idHasher)
	require.True(t, ok)

	assert.Equal(t, uint32(32*1024), hasher.params.memoryKiB)
	assert.Equal(t, uint32(2), hasher.params.iterations)
	// Unset fields keep the defaults.
	assert.Equal(t, uint8(2), hasher.params.parallelism)
	assert.Equal(t, uint32(16), hasher.params.saltLength)
	assert.Equal(t, uint32(32), hasher.params.keyLength)
}
