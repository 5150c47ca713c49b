package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/passforge/passforge-go/internal/strength"
)

func newAnalysisHandler(est strength.Estimator) *AnalysisHandler {
	return NewAnalysisHandler(service.NewAnalysisService(est))
}

func TestHandleCheckStrength(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	rec := postJSON(t, h.HandleCheckStrength, `{"password": "hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report model.Strength
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Score)
	assert.Equal(t, "3 hours", report.CrackTime)
	assert.NotNil(t, report.Feedback.Suggestions)
}

func TestHandleCheckStrength_MissingPassword(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	rec := postJSON(t, h.HandleCheckStrength, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password is required")
}

func TestHandleCheckStrength_EstimatorFailure(t *testing.T) {
	h := newAnalysisHandler(func(password string) (model.Strength, error) {
		return model.Strength{}, errors.New("estimator exploded")
	})

	// Estimator failures surface as the same generic client error as
	// configuration mistakes.
	rec := postJSON(t, h.HandleCheckStrength, `{"password": "hunter2"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "estimator exploded")
}

func TestHandleValidate(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	body := `{"password": "abc", "rules": {"min_length": 8, "require_upper": true, "require_lower": true, "require_digit": true, "require_special": true}}`
	rec := postJSON(t, h.HandleValidate, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsValid)
	require.Len(t, resp.Errors, 4)
	assert.Equal(t, "Password too short (min 8 chars)", resp.Errors[0])
	assert.Equal(t, "Password must contain uppercase letters", resp.Errors[1])
	assert.Equal(t, "Password must contain digits", resp.Errors[2])
	assert.Equal(t, "Password must contain special characters", resp.Errors[3])
}

func TestHandleValidate_ValidPassword(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	body := `{"password": "Str0ng!pass", "rules": {"min_length": 8, "require_upper": true, "require_lower": true, "require_digit": true, "require_special": true}}`
	rec := postJSON(t, h.HandleValidate, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)
	assert.Equal(t, []string{}, resp.Errors)
}

func TestHandleHash(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	rec := postJSON(t, h.HandleHash, `{"password": "abc123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.HashResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "6ca13d52ca70c883e0f0bb101e425a89e8624de51db2d2392593af6a84118090", resp.Hash)
}

func TestHandleHash_ExplicitAlgorithm(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	rec := postJSON(t, h.HandleHash, `{"password": "abc123", "algorithm": "sha1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.HashResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "6367c48dd193d56ea7b0baad25b19455e529f5ee", resp.Hash)
}

func TestHandleHash_UnsupportedAlgorithm(t *testing.T) {
	h := newAnalysisHandler(stubEstimator())

	rec := postJSON(t, h.HandleHash, `{"password": "abc123", "algorithm": "whirlpool"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported hash algorithm")
}
