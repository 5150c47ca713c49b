package crypto

import (
	"errors"
	"strings"
)

var ErrLengthInsufficient = errors.New("length must be at least the number of enabled character categories")

// PasswordOptions configures random password generation.
type PasswordOptions struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Special          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// DefaultPasswordOptions returns the defaults: 12 characters, all
// categories enabled, both exclusion filters on.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:           12,
		Lowercase:        true,
		Uppercase:        true,
		Digits:           true,
		Special:          true,
		ExcludeSimilar:   true,
		ExcludeAmbiguous: true,
	}
}

// GeneratePassword creates a cryptographically secure random password.
// Every enabled category that survives exclusion filtering is represented
// at least once; the result is shuffled so the guaranteed characters do
// not cluster at the front.
func GeneratePassword(opts PasswordOptions) (string, error) {
	classes, err := BuildCharsets(CharsetOptions{
		Lowercase:        opts.Lowercase,
		Uppercase:        opts.Uppercase,
		Digits:           opts.Digits,
		Special:          opts.Special,
		ExcludeSimilar:   opts.ExcludeSimilar,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
	})
	if err != nil {
		return "", err
	}

	// One guaranteed character per class must fit in the length budget.
	if opts.Length < len(classes) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, 0, opts.Length)
	for _, class := range classes {
		ch, err := secureChar(class)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	pool := strings.Join(classes, "")
	for len(result) < opts.Length {
		ch, err := secureChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}
