package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// DefaultHashAlgorithm is used when a request leaves the algorithm unset.
const DefaultHashAlgorithm = "sha256"

// hashAlgorithms is the digest registry for HashPassword.
var hashAlgorithms = map[string]func() hash.Hash{
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha224":   sha256.New224,
	"sha256":   sha256.New,
	"sha384":   sha512.New384,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
	"sha3-512": sha3.New512,
	"blake2b-256": func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	},
}

// HashPassword returns the hexadecimal digest of password under the named
// algorithm. Deterministic; no salt is involved. An empty algorithm name
// selects DefaultHashAlgorithm.
func HashPassword(password, algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = DefaultHashAlgorithm
	}

	newHash, ok := hashAlgorithms[strings.ToLower(algorithm)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	h := newHash()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)), nil
}
