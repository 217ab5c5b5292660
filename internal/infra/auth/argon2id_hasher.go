// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"passport/config"
	"passport/internal/domain/service"
)

const argon2Version = 19 // argon2.Version is 0x13 (19)

// argon2idParams holds the work parameters baked into each hash.
type argon2idParams struct {
	memoryKiB   uint32
	iterations  uint32
	parallelism uint8
	saltLength  uint32
	keyLength   uint32
}

// defaultArgon2idParams are the recommended interactive-login settings.
func defaultArgon2idParams() argon2idParams {
	return argon2idParams{
		memoryKiB:   64 * 1024,
		iterations:  3,
		parallelism: 2,
		saltLength:  16,
		keyLength:   32,
	}
}

// argon2idHasher is a concrete implementation of the PasswordHasher interface using Argon2id.
type argon2idHasher struct {
	params argon2idParams
}

// NewArgon2idHasher is the constructor for argon2idHasher. Config values
// override the defaults field by field; zero means "keep the default".
func NewArgon2idHasher(cfg *config.Config) service.PasswordHasher {
	params := defaultArgon2idParams()

	if cfg != nil && cfg.Argon2 != nil {
		if cfg.Argon2.MemoryKiB != 0 {
			params.memoryKiB = cfg.Argon2.MemoryKiB
		}
		if cfg.Argon2.Iterations != 0 {
			params.iterations = cfg.Argon2.Iterations
		}
		if cfg.Argon2.Parallelism != 0 {
			params.parallelism = cfg.Argon2.Parallelism
		}
		if cfg.Argon2.SaltLength != 0 {
			params.saltLength = cfg.Argon2.SaltLength
		}
		if cfg.Argon2.KeyLength != 0 {
			params.keyLength = cfg.Argon2.KeyLength
		}
	}

	return &argon2idHasher{params: params}
}

// Hash derives an Argon2id hash with a fresh random salt and encodes it as a
// self-describing PHC string:
//
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>
func (h *argon2idHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.iterations,
		h.params.memoryKiB,
		h.params.parallelism,
		h.params.keyLength,
	)

	b64 := base64.RawStdEncoding

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Version,
		h.params.memoryKiB,
		h.params.iterations,
		h.params.parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	), nil
}

// Check recomputes the digest with the parameters and salt embedded in the
// stored hash and compares in constant time. A malformed stored hash reports
// false, the same as a wrong password.
func (h *argon2idHasher) Check(password, hash string) bool {
	params, salt, expected, ok := decodeArgon2idHash(hash)
	if !ok {
		return false
	}

	// Refuse hashes whose parameters wildly exceed our configured settings,
	// so an attacker-controlled hash string cannot force pathological
	// resource usage during verification.
	if !withinReasonableBounds(params, h.params) {
		return false
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		params.iterations,
		params.memoryKiB,
		params.parallelism,
		uint32(len(expected)),
	)

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func withinReasonableBounds(got, limits argon2idParams) bool {
	// Allow verifying hashes generated with older/smaller settings,
	// but reject wildly larger ones.
	if got.memoryKiB > limits.memoryKiB*2 {
		return false
	}
	if got.iterations > limits.iterations*2 {
		return false
	}
	if uint32(got.parallelism) > uint32(limits.parallelism)*2 {
		return false
	}
	if got.keyLength < 16 || got.keyLength > 128 {
		return false
	}

	return true
}

// decodeArgon2idHash parses the PHC string and returns params, salt and expected key.
func decodeArgon2idHash(encoded string) (argon2idParams, []byte, []byte, bool) {
	// Expected: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return argon2idParams{}, nil, nil, false
	}

	if parts[2] != fmt.Sprintf("v=%d", argon2Version) {
		return argon2idParams{}, nil, nil, false
	}

	var mem, iter, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return argon2idParams{}, nil, nil, false
	}
	if mem == 0 || iter == 0 || par == 0 || par > 255 {
		return argon2idParams{}, nil, nil, false
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 || len(salt) > 64 {
		return argon2idParams{}, nil, nil, false
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return argon2idParams{}, nil, nil, false
	}

	params := argon2idParams{
		memoryKiB:   mem,
		iterations:  iter,
		parallelism: uint8(par),
		saltLength:  uint32(len(salt)),
		keyLength:   uint32(len(key)),
	}

	return params, salt, key, true
}
