package crypto

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names for the name-based generator, selectable via configuration.
const (
	StrategyShuffle  = "shuffle"
	StrategyCityWord = "cityword"
)

var (
	ErrNameRequired     = errors.New("a primary name part is required")
	ErrComplexityRange  = errors.New("complexity must be between 1 and 3")
	ErrNameLengthTooLow = errors.New("name-based password length must be at least 4")
	ErrUnknownStrategy  = errors.New("unknown name strategy")
)

// Separators usable between combined name parts. The empty string is a
// valid choice.
var nameSeparators = []string{"", ".", "-", "_", "$", "&"}

// cityWords is the themed word list for the cityword strategy.
var cityWords = []string{
	"tokyo", "paris", "cairo", "oslo", "lima",
	"quito", "milan", "kyoto", "dakar", "perth",
}

var cityReplacer = strings.NewReplacer("a", "4", "i", "1", "o", "0", "s", "5")

// randomFillChars is the alphabet for random padding and fill characters.
const randomFillChars = lowercaseChars + uppercaseChars + digitChars + specialChars

// NameBasedOptions configures name-based password generation.
type NameBasedOptions struct {
	NamePart1     string
	NamePart2     string
	Length        int
	Complexity    int
	IncludeRandom bool
	// Strategy selects how name parts combine with randomness; empty
	// means StrategyShuffle.
	Strategy string
}

// DefaultNameBasedOptions returns the defaults: 12 characters at moderate
// complexity with random filler enabled.
func DefaultNameBasedOptions() NameBasedOptions {
	return NameBasedOptions{
		Length:        12,
		Complexity:    2,
		IncludeRandom: true,
	}
}

// GenerateNameBased derives a password from one or two name parts. The
// output always has exactly the requested length: short compositions are
// padded with secure random characters and long ones truncated. The final
// output is guaranteed to contain at least one uppercase letter, one digit
// and one punctuation character; missing classes are patched into the
// trailing positions, which trades some randomness for the guarantee.
func GenerateNameBased(opts NameBasedOptions, names *NameTransformer) (string, error) {
	if opts.NamePart1 == "" {
		return "", ErrNameRequired
	}
	if opts.Complexity < 1 || opts.Complexity > 3 {
		return "", ErrComplexityRange
	}
	if opts.Length < 4 {
		return "", ErrNameLengthTooLow
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyShuffle
	}

	var (
		base    []rune
		shuffle bool
	)
	switch strategy {
	case StrategyShuffle:
		b, err := composeShuffle(opts, names)
		if err != nil {
			return "", err
		}
		base, shuffle = b, true
	case StrategyCityWord:
		b, err := composeCityWord(opts)
		if err != nil {
			return "", err
		}
		base = b
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	if shuffle {
		if err := secureShuffleRunes(base); err != nil {
			return "", err
		}
	}

	// Length is counted in characters, not bytes, so non-ASCII names
	// survive truncation intact.
	if len(base) > opts.Length {
		base = base[:opts.Length]
	}
	for len(base) < opts.Length {
		ch, err := secureChar(randomFillChars)
		if err != nil {
			return "", err
		}
		base = append(base, rune(ch))
	}

	if err := patchClasses(base); err != nil {
		return "", err
	}

	return string(base), nil
}

// composeShuffle transforms both name parts at the requested complexity,
// joins them with a random separator and optionally appends random filler.
func composeShuffle(opts NameBasedOptions, names *NameTransformer) ([]rune, error) {
	base := names.Transform(opts.NamePart1, opts.Complexity)
	if opts.NamePart2 != "" {
		sep := nameSeparators[names.rng.IntN(len(nameSeparators))]
		base += sep + names.Transform(opts.NamePart2, opts.Complexity)
	}
	return appendRandomFiller([]rune(base), opts)
}

// composeCityWord splices a random city word into the middle of the
// substituted primary name; the secondary part, when present, is appended
// after it. Structure is preserved, so no shuffle follows. The midpoint
// split counts characters so multi-byte names are never cut mid-rune.
func composeCityWord(opts NameBasedOptions) ([]rune, error) {
	part1 := []rune(cityReplacer.Replace(strings.ToLower(opts.NamePart1)))

	i, err := secureIndex(len(cityWords))
	if err != nil {
		return nil, err
	}
	city := cityWords[i]

	mid := len(part1) / 2
	base := append([]rune{}, part1[:mid]...)
	base = append(base, []rune(city)...)
	base = append(base, part1[mid:]...)
	if opts.NamePart2 != "" {
		base = append(base, []rune(cityReplacer.Replace(strings.ToLower(opts.NamePart2)))...)
	}
	return appendRandomFiller(base, opts)
}

func appendRandomFiller(base []rune, opts NameBasedOptions) ([]rune, error) {
	if !opts.IncludeRandom {
		return base, nil
	}
	n := opts.Length / 3
	if n < 4 {
		n = 4
	}
	for i := 0; i < n; i++ {
		ch, err := secureChar(randomFillChars)
		if err != nil {
			return nil, err
		}
		base = append(base, rune(ch))
	}
	return base, nil
}

// patchClasses rewrites trailing characters so that password contains at
// least one uppercase letter, one digit and one punctuation character.
// Each class patches its own position counting back from the end; because
// a patch can overwrite the sole representative of a class verified
// earlier in the same pass, passes repeat until a full pass finds every
// class present. A class written to its own slot is never overwritten by
// another class, so this settles within three passes.
func patchClasses(password []rune) error {
	for {
		pos := len(password) - 1
		patched := false
		for _, class := range []string{uppercaseChars, digitChars, specialChars} {
			if !strings.ContainsAny(string(password), class) {
				ch, err := secureChar(class)
				if err != nil {
					return err
				}
				password[pos] = rune(ch)
				patched = true
			}
			pos--
		}
		if !patched {
			return nil
		}
	}
}
