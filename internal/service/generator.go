package service

import (
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// GeneratorService handles password, passphrase, PIN and name-based
// generation. Every generated secret except PINs is passed through the
// injected strength estimator before it is returned.
type GeneratorService struct {
	estimator    strength.Estimator
	names        *crypto.NameTransformer
	nameStrategy string
}

// NewGeneratorService creates a GeneratorService. An empty nameStrategy
// selects the shuffle strategy.
func NewGeneratorService(est strength.Estimator, nameStrategy string) *GeneratorService {
	if nameStrategy == "" {
		nameStrategy = crypto.StrategyShuffle
	}
	return &GeneratorService{
		estimator:    est,
		names:        crypto.NewNameTransformer(),
		nameStrategy: nameStrategy,
	}
}

// GeneratePassword produces a random password and its strength report.
// Name parts are accepted for request-shape parity but the random
// generator does not consume them.
func (s *GeneratorService) GeneratePassword(req model.PasswordRequest) (model.PasswordResponse, error) {
	opts := crypto.PasswordOptions{
		Length:           req.Length,
		Lowercase:        boolOrDefault(req.IncludeLowercase, true),
		Uppercase:        boolOrDefault(req.IncludeUppercase, true),
		Digits:           boolOrDefault(req.IncludeDigits, true),
		Special:          boolOrDefault(req.IncludeSpecial, true),
		ExcludeSimilar:   boolOrDefault(req.ExcludeSimilar, true),
		ExcludeAmbiguous: boolOrDefault(req.ExcludeAmbiguous, true),
	}
	if opts.Length == 0 {
		opts.Length = crypto.DefaultPasswordOptions().Length
	}

	password, err := crypto.GeneratePassword(opts)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	report, err := s.estimator(password)
	if err != nil {
		return model.PasswordResponse{}, fmt.Errorf("estimating strength: %w", err)
	}

	return model.PasswordResponse{Password: password, Strength: report}, nil
}

// GeneratePassphrase produces a passphrase and its strength report.
func (s *GeneratorService) GeneratePassphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	opts := crypto.PassphraseOptions{
		WordCount:  req.WordCount,
		Separator:  stringOrDefault(req.Separator, "-"),
		Capitalize: boolOrDefault(req.Capitalize, true),
		AddNumber:  boolOrDefault(req.AddNumber, true),
		NamePart1:  req.NamePart1,
		NamePart2:  req.NamePart2,
	}
	if opts.WordCount == 0 {
		opts.WordCount = crypto.DefaultPassphraseOptions().WordCount
	}

	phrase, err := crypto.GeneratePassphrase(opts, s.names)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	report, err := s.estimator(phrase)
	if err != nil {
		return model.PassphraseResponse{}, fmt.Errorf("estimating strength: %w", err)
	}

	return model.PassphraseResponse{Passphrase: phrase, Strength: report}, nil
}

// GeneratePin produces a numeric PIN. PINs carry no strength report.
func (s *GeneratorService) GeneratePin(req model.PinRequest) (model.PinResponse, error) {
	length := req.Length
	if length == 0 {
		length = crypto.DefaultPinLength
	}

	pin, err := crypto.GeneratePin(length)
	if err != nil {
		return model.PinResponse{}, err
	}

	return model.PinResponse{Pin: pin}, nil
}

// GenerateNameBased produces a name-derived password and its strength
// report using the configured strategy.
func (s *GeneratorService) GenerateNameBased(req model.NameBasedRequest) (model.PasswordResponse, error) {
	opts := crypto.NameBasedOptions{
		NamePart1:     req.NamePart1,
		NamePart2:     req.NamePart2,
		Length:        req.Length,
		Complexity:    req.Complexity,
		IncludeRandom: boolOrDefault(req.IncludeRandom, true),
		Strategy:      s.nameStrategy,
	}
	defaults := crypto.DefaultNameBasedOptions()
	if opts.Length == 0 {
		opts.Length = defaults.Length
	}
	if opts.Complexity == 0 {
		opts.Complexity = defaults.Complexity
	}

	password, err := crypto.GenerateNameBased(opts, s.names)
	if err != nil {
		return model.PasswordResponse{}, err
	}

	report, err := s.estimator(password)
	if err != nil {
		return model.PasswordResponse{}, fmt.Errorf("estimating strength: %w", err)
	}

	return model.PasswordResponse{Password: password, Strength: report}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// stringOrDefault returns the dereferenced pointer value, or the fallback if nil.
func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
