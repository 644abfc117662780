// Package cryptox implements password hashing for the credential store.
//
// Hashes are Argon2 keys encoded in the PHC string format
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
//
// with unpadded standard base64 for salt and key. This is the format written by
// passlib, so hashes created by earlier deployments keep verifying.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash   = errors.New("malformed password hash")
	ErrUnsupportedHash = errors.New("unsupported password hash")
)

// Argon2Params controls the cost of newly created hashes. Verification always
// uses the parameters embedded in the stored hash.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params matches passlib's argon2 defaults.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

const (
	variantID = "argon2id"
	variantI  = "argon2i"
)

var b64 = base64.RawStdEncoding

// HashPassword derives an Argon2id key for password with a fresh random salt and
// returns its PHC encoding.
func HashPassword(password string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
	return encodeHash(variantID, p, salt, key), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// A mismatch is (false, nil); an unparsable hash is reported as an error.
func VerifyPassword(password, encoded string) (bool, error) {
	h, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	var candidate []byte
	switch h.variant {
	case variantID:
		candidate = argon2.IDKey([]byte(password), h.salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	case variantI:
		candidate = argon2.Key([]byte(password), h.salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	}

	return subtle.ConstantTimeCompare(h.key, candidate) == 1, nil
}

type decodedHash struct {
	variant string
	params  Argon2Params
	salt    []byte
	key     []byte
}

func encodeHash(variant string, p Argon2Params, salt, key []byte) string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		variant, argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		b64.EncodeToString(salt), b64.EncodeToString(key))
}

func decodeHash(encoded string) (*decodedHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, ErrMalformedHash
	}

	h := &decodedHash{variant: parts[1]}
	if h.variant != variantID && h.variant != variantI {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHash, h.variant)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedHash, version)
	}

	var parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.params.Memory, &h.params.Iterations, &parallelism); err != nil {
		return nil, ErrMalformedHash
	}
	if parallelism == 0 || parallelism > 255 || h.params.Iterations == 0 {
		return nil, ErrMalformedHash
	}
	h.params.Parallelism = uint8(parallelism)

	var err error
	if h.salt, err = b64.DecodeString(parts[4]); err != nil {
		return nil, ErrMalformedHash
	}
	if h.key, err = b64.DecodeString(parts[5]); err != nil || len(h.key) == 0 {
		return nil, ErrMalformedHash
	}
	h.params.SaltLength = uint32(len(h.salt))
	h.params.KeyLength = uint32(len(h.key))

	return h, nil
}
