package crypto

import (
	"errors"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Visually similar characters removed by the exclude-similar filter.
	similarChars = "l1Io0O"
	// Punctuation removed by the exclude-ambiguous filter.
	ambiguousChars = "{}[]()/\\'\"`~,;:.<>"
)

var (
	ErrNoCategories          = errors.New("at least one character category must be enabled")
	ErrAllCategoriesExcluded = errors.New("every enabled character category is empty after exclusions")
)

// CharsetOptions selects the character categories and exclusion filters
// used to assemble the password alphabet.
type CharsetOptions struct {
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Special          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// BuildCharsets assembles the list of character classes for password
// generation. Each enabled class is filtered independently against the
// active exclusion sets; classes left empty by filtering are dropped.
// The returned classes keep a fixed order: lowercase, uppercase, digits,
// special.
func BuildCharsets(opts CharsetOptions) ([]string, error) {
	var classes []string
	if opts.Lowercase {
		classes = append(classes, lowercaseChars)
	}
	if opts.Uppercase {
		classes = append(classes, uppercaseChars)
	}
	if opts.Digits {
		classes = append(classes, digitChars)
	}
	if opts.Special {
		classes = append(classes, specialChars)
	}

	if len(classes) == 0 {
		return nil, ErrNoCategories
	}

	var excluded string
	if opts.ExcludeSimilar {
		excluded += similarChars
	}
	if opts.ExcludeAmbiguous {
		excluded += ambiguousChars
	}

	filtered := make([]string, 0, len(classes))
	for _, class := range classes {
		var b strings.Builder
		for i := 0; i < len(class); i++ {
			if !strings.ContainsRune(excluded, rune(class[i])) {
				b.WriteByte(class[i])
			}
		}
		if b.Len() > 0 {
			filtered = append(filtered, b.String())
		}
	}

	if len(filtered) == 0 {
		return nil, ErrAllCategoriesExcluded
	}

	return filtered, nil
}
