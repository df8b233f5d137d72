// Package cryptox implements the password hashing engine. Hashes are produced
// with Argon2id and encoded in the standard PHC string format, so every hash
// carries its own parameters and salt and the scheme can evolve without
// rehashing unrelated accounts.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// Argon2id parameters. Matches the profile used for key derivation elsewhere
// in the project: 1 pass over 64 MiB with 4 lanes, 32-byte output.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
	saltLen             = 16
)

var errMalformedHash = errors.New("malformed encoded hash")

// HashPassword hashes the password with Argon2id under a fresh random salt
// and returns a self-describing encoded string:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 digest>
//
// The plaintext is never stored or logged.
func HashPassword(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(saltLen)

	digest := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)
	return encoded, nil
}

// VerifyPassword recomputes the digest of password under the parameters and
// salt embedded in encodedHash and compares in constant time. A malformed
// encodedHash is treated as a verification failure, not an error.
func VerifyPassword(encodedHash string, password []byte) bool {
	salt, digest, time, memory, threads, err := decodeHash(encodedHash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey(password, salt, time, memory, threads, uint32(len(digest)))
	return subtle.ConstantTimeCompare(digest, candidate) == 1
}

// decodeHash splits a PHC-encoded Argon2id string into its components.
func decodeHash(encodedHash string) (salt, digest []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, errMalformedHash
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, errMalformedHash
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, errMalformedHash
	}
	if memory == 0 || time == 0 || threads == 0 {
		return nil, nil, 0, 0, 0, errMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, errMalformedHash
	}
	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return nil, nil, 0, 0, 0, errMalformedHash
	}

	return salt, digest, time, memory, threads, nil
}
