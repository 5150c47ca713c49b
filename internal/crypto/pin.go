package crypto

import "errors"

var ErrPinTooShort = errors.New("pin length must be at least 4 digits")

// DefaultPinLength is used when a request leaves the length unset.
const DefaultPinLength = 6

// GeneratePin creates a numeric PIN of the given length. Digits are drawn
// uniformly and independently from a cryptographically secure source.
func GeneratePin(length int) (string, error) {
	if length < 4 {
		return "", ErrPinTooShort
	}

	pin := make([]byte, length)
	for i := range pin {
		ch, err := secureChar(digitChars)
		if err != nil {
			return "", err
		}
		pin[i] = ch
	}

	return string(pin), nil
}
