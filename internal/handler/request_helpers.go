package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SkillForge_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// When it returns an error the response has already been written.
//
// Example usage:
//
//	var req AddLevelsRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Add levels"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetPlayerIDParam reads and validates the {playerID} path segment.
// If ok is false the response has already been written.
func GetPlayerIDParam(r *http.Request, w http.ResponseWriter) (string, bool) {
	playerID := chi.URLParam(r, PathParamPlayerID)
	if playerID == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, PathParamPlayerID))
		return "", false
	}
	if err := GetValidator().ValidateVar(playerID, "playerid"); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{"player_id": "Invalid player id"},
		})
		return "", false
	}
	return playerID, true
}

// GetOptionalIntQueryParam parses an optional integer query parameter.
// If ok is false the response has already been written.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, name string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Invalid integer query parameter", "param", name, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return 0, false
	}
	return v, true
}
