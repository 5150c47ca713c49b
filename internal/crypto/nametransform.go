package crypto

import (
	"strings"
	"unicode"
)

// Symbols prepended to each character at transform level 3.
const prefixSymbols = "@#$%&*+-=_"

var level1Replacer = strings.NewReplacer("a", "@", "e", "3", "i", "!")

// NameTransformer obfuscates name strings for cosmetic inclusion in
// generated secrets. The transform is lossy and partly randomized; it must
// never be used for authentication comparison. Its randomness is not
// security-critical, so it runs on an injectable Rand.
type NameTransformer struct {
	rng Rand
}

// NewNameTransformer returns a transformer backed by the default casual
// random source.
func NewNameTransformer() *NameTransformer {
	return &NameTransformer{rng: CasualRand()}
}

// NewNameTransformerWithRand returns a transformer using the given random
// source. Tests substitute a deterministic one here.
func NewNameTransformerWithRand(rng Rand) *NameTransformer {
	return &NameTransformer{rng: rng}
}

// Transform obfuscates name at the given complexity level. Levels stack:
//
//	1: substitute look-alike symbols for a, e, i
//	2: additionally swap adjacent character pairs from the end and apply
//	   random capitalization (~30% per character)
//	3: additionally prepend a random symbol before each character, keeping
//	   the last 12 characters
//
// Empty input yields empty output at every level.
func (t *NameTransformer) Transform(name string, level int) string {
	if name == "" {
		return ""
	}

	s := level1Replacer.Replace(strings.ToLower(name))

	// Pair swaps, capitalization and truncation all operate on runes so
	// multi-byte names stay valid UTF-8.
	if level >= 2 {
		r := []rune(s)
		if len(r) > 2 {
			for i := len(r) - 1; i >= 1; i -= 2 {
				r[i], r[i-1] = r[i-1], r[i]
			}
		}
		for i := range r {
			if t.rng.IntN(10) < 3 {
				r[i] = unicode.ToUpper(r[i])
			}
		}
		s = string(r)
	}

	if level >= 3 {
		src := []rune(s)
		r := make([]rune, 0, 2*len(src))
		for _, c := range src {
			r = append(r, rune(prefixSymbols[t.rng.IntN(len(prefixSymbols))]))
			r = append(r, c)
		}
		if len(r) > 12 {
			r = r[len(r)-12:]
		}
		s = string(r)
	}

	return s
}
