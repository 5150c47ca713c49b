package handler

import (
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// AnalysisHandler handles HTTP requests for strength checking, validation
// and hashing. Configuration mistakes and estimator failures both surface
// as the same generic client error; callers only see the message text.
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: svc}
}

// HandleCheckStrength handles POST /check-strength requests.
func (h *AnalysisHandler) HandleCheckStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := h.service.CheckStrength(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// HandleValidate handles POST /validate requests.
func (h *AnalysisHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Validate(req))
}

// HandleHash handles POST /hash requests.
func (h *AnalysisHandler) HandleHash(w http.ResponseWriter, r *http.Request) {
	var req model.HashRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Hash(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
