package service

import (
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

func TestCheckStrength(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	report, err := svc.CheckStrength(model.StrengthRequest{Password: "hunter2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score != 3 {
		t.Errorf("expected stubbed score 3, got %d", report.Score)
	}
	if report.CrackTime != "centuries" {
		t.Errorf("expected stubbed crack time, got %q", report.CrackTime)
	}
}

func TestCheckStrength_EmptyPassword(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	_, err := svc.CheckStrength(model.StrengthRequest{})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestCheckStrength_EstimatorFailure(t *testing.T) {
	wantErr := errors.New("estimator exploded")
	svc := NewAnalysisService(failingEstimator(wantErr))

	_, err := svc.CheckStrength(model.StrengthRequest{Password: "hunter2"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped estimator error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	resp := svc.Validate(model.ValidateRequest{
		Password: "abc",
		Rules: model.ValidationRules{
			MinLength:      8,
			RequireUpper:   true,
			RequireLower:   true,
			RequireDigit:   true,
			RequireSpecial: true,
		},
	})

	if resp.IsValid {
		t.Error("expected invalid result for \"abc\"")
	}
	if len(resp.Errors) != 4 {
		t.Errorf("expected 4 errors, got %d: %q", len(resp.Errors), resp.Errors)
	}
}

func TestValidate_NoRules(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	resp := svc.Validate(model.ValidateRequest{Password: "anything"})
	if !resp.IsValid {
		t.Error("expected valid result with no rules enforced")
	}
	if resp.Errors == nil || len(resp.Errors) != 0 {
		t.Errorf("expected empty non-nil error list, got %#v", resp.Errors)
	}
}

func TestHash(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	resp, err := svc.Hash(model.HashRequest{Password: "abc123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Hash != "6ca13d52ca70c883e0f0bb101e425a89e8624de51db2d2392593af6a84118090" {
		t.Errorf("unexpected sha256 digest %q", resp.Hash)
	}
}

func TestHash_UnsupportedAlgorithm(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	_, err := svc.Hash(model.HashRequest{Password: "abc123", Algorithm: "rot13"})
	if !errors.Is(err, crypto.ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	svc := NewAnalysisService(stubEstimator(nil))

	_, err := svc.Hash(model.HashRequest{})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
}
