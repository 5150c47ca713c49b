package crypto

import (
	"errors"
	"strconv"
	"strings"
)

var ErrWordCountTooLow = errors.New("word count must be at least 1")

// passphraseWords is the fixed dictionary for passphrase composition.
var passphraseWords = []string{
	"apple", "banana", "carrot", "dog", "elephant", "flower", "giraffe",
	"house", "igloo", "jungle", "kangaroo", "lion", "mountain", "night",
	"ocean", "penguin", "queen", "river", "sun", "tree", "umbrella",
	"volcano", "water", "xylophone", "yacht", "zebra",
}

// PassphraseOptions configures passphrase composition.
type PassphraseOptions struct {
	WordCount  int
	Separator  string
	Capitalize bool
	AddNumber  bool
	NamePart1  string
	NamePart2  string
}

// DefaultPassphraseOptions returns the defaults: four words joined with
// "-", title-cased, with a two-digit suffix.
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount:  4,
		Separator:  "-",
		Capitalize: true,
		AddNumber:  true,
	}
}

// GeneratePassphrase composes a memorable passphrase from random dictionary
// words. Provided name parts are appended as extra words after a level-1
// name transform. Words are drawn with replacement from a secure source;
// the optional numeric suffix is uniform in 10-99 and joined without a
// separator.
func GeneratePassphrase(opts PassphraseOptions, names *NameTransformer) (string, error) {
	if opts.WordCount < 1 {
		return "", ErrWordCountTooLow
	}

	words := make([]string, 0, opts.WordCount+2)
	for i := 0; i < opts.WordCount; i++ {
		j, err := secureIndex(len(passphraseWords))
		if err != nil {
			return "", err
		}
		words = append(words, passphraseWords[j])
	}

	if opts.NamePart1 != "" {
		words = append(words, names.Transform(opts.NamePart1, 1))
	}
	if opts.NamePart2 != "" {
		words = append(words, names.Transform(opts.NamePart2, 1))
	}

	if opts.Capitalize {
		for i, w := range words {
			words[i] = capitalize(w)
		}
	}

	phrase := strings.Join(words, opts.Separator)

	if opts.AddNumber {
		n, err := secureIndex(90)
		if err != nil {
			return "", err
		}
		phrase += strconv.Itoa(n + 10)
	}

	return phrase, nil
}

// capitalize upper-cases the first character of w when it is an ASCII
// letter. Transformed name parts may start with a symbol; those are left
// as-is.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	if w[0] >= 'a' && w[0] <= 'z' {
		return string(w[0]-('a'-'A')) + w[1:]
	}
	return w
}
