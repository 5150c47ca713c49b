package model

// PasswordRequest represents a random password generation request.
// Pointer bools distinguish a missing field (nil -> default true) from an
// explicit false.
type PasswordRequest struct {
	Length           int    `json:"length"`
	IncludeUppercase *bool  `json:"include_uppercase"`
	IncludeLowercase *bool  `json:"include_lowercase"`
	IncludeDigits    *bool  `json:"include_digits"`
	IncludeSpecial   *bool  `json:"include_special"`
	ExcludeSimilar   *bool  `json:"exclude_similar"`
	ExcludeAmbiguous *bool  `json:"exclude_ambiguous"`
	NamePart1        string `json:"name_part1,omitempty"`
	NamePart2        string `json:"name_part2,omitempty"`
}

// PasswordResponse carries a generated password with its strength report.
// It is shared by the random and name-based endpoints.
type PasswordResponse struct {
	Password string   `json:"password"`
	Strength Strength `json:"strength"`
}

// PassphraseRequest represents a passphrase generation request. The
// separator is a pointer so an explicit empty separator survives decoding.
type PassphraseRequest struct {
	WordCount  int     `json:"word_count"`
	Separator  *string `json:"separator"`
	Capitalize *bool   `json:"capitalize"`
	AddNumber  *bool   `json:"add_number"`
	NamePart1  string  `json:"name_part1,omitempty"`
	NamePart2  string  `json:"name_part2,omitempty"`
}

// PassphraseResponse carries a generated passphrase with its strength
// report.
type PassphraseResponse struct {
	Passphrase string   `json:"passphrase"`
	Strength   Strength `json:"strength"`
}

// PinRequest represents a PIN generation request.
type PinRequest struct {
	Length int `json:"length"`
}

// PinResponse carries a generated PIN. PINs get no strength report.
type PinResponse struct {
	Pin string `json:"pin"`
}

// NameBasedRequest represents a name-based password generation request.
type NameBasedRequest struct {
	NamePart1     string `json:"name_part1"`
	NamePart2     string `json:"name_part2,omitempty"`
	Length        int    `json:"length"`
	Complexity    int    `json:"complexity"`
	IncludeRandom *bool  `json:"include_random"`
}
