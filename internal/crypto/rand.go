package crypto

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Rand supplies non-security-critical randomness for cosmetic choices such
// as name-transform capitalization and symbol prefixes. Security-relevant
// draws (password, PIN and passphrase characters, shuffles, padding) never
// go through it; they use crypto/rand via the secure* helpers below.
type Rand interface {
	IntN(n int) int
}

type casualRand struct{}

func (casualRand) IntN(n int) int { return mathrand.Intn(n) }

// CasualRand returns the default math/rand backed Rand.
func CasualRand() Rand { return casualRand{} }

// secureIndex returns a uniform random index in [0, n) using crypto/rand.
func secureIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// secureChar picks a random character from charset using crypto/rand.
func secureChar(charset string) (byte, error) {
	i, err := secureIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := secureIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// secureShuffleRunes is secureShuffle for rune slices.
func secureShuffleRunes(data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := secureIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
