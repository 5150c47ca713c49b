package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

var ErrPasswordRequired = errors.New("password is required")

// AnalysisService handles strength checking, rule validation and hashing
// of caller-supplied passwords.
type AnalysisService struct {
	estimator strength.Estimator
}

// NewAnalysisService creates an AnalysisService around the given estimator.
func NewAnalysisService(est strength.Estimator) *AnalysisService {
	return &AnalysisService{estimator: est}
}

// CheckStrength scores the given password with the estimator.
func (s *AnalysisService) CheckStrength(req model.StrengthRequest) (model.Strength, error) {
	if req.Password == "" {
		return model.Strength{}, ErrPasswordRequired
	}

	report, err := s.estimator(req.Password)
	if err != nil {
		return model.Strength{}, fmt.Errorf("estimating strength: %w", err)
	}

	return report, nil
}

// Validate checks the password against the enforced rules. An empty
// password is a legal input here; it simply fails whichever rules apply.
func (s *AnalysisService) Validate(req model.ValidateRequest) model.ValidateResponse {
	result := crypto.ValidatePassword(req.Password, crypto.ValidationRules{
		MinLength:      req.Rules.MinLength,
		RequireUpper:   req.Rules.RequireUpper,
		RequireLower:   req.Rules.RequireLower,
		RequireDigit:   req.Rules.RequireDigit,
		RequireSpecial: req.Rules.RequireSpecial,
	})

	return model.ValidateResponse{IsValid: result.IsValid, Errors: result.Errors}
}

// Hash digests the password under the named algorithm.
func (s *AnalysisService) Hash(req model.HashRequest) (model.HashResponse, error) {
	if req.Password == "" {
		return model.HashResponse{}, ErrPasswordRequired
	}

	digest, err := crypto.HashPassword(req.Password, req.Algorithm)
	if err != nil {
		return model.HashResponse{}, err
	}

	return model.HashResponse{Hash: digest}, nil
}
