package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for the generation endpoints.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandlePassword handles POST /generate/password requests.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassword(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /generate/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassphrase(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePin handles POST /generate/pin requests.
func (h *GeneratorHandler) HandlePin(w http.ResponseWriter, r *http.Request) {
	var req model.PinRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePin(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleNameBased handles POST /generate/name-based requests.
func (h *GeneratorHandler) HandleNameBased(w http.ResponseWriter, r *http.Request) {
	var req model.NameBasedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateNameBased(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeBody decodes a JSON request body into v, writing the error
// response itself when decoding fails. An empty body is treated as an
// empty object so every field falls back to its default.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		if errors.Is(err, io.EOF) {
			return true
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
