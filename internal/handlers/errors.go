package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"magicwriting/internal/logger"
	"magicwriting/internal/validation"
)

func respondWithError(w http.ResponseWriter, log *logger.Logger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Error(logMsg, "status", status, "error", err)
	}

	http.Error(w, userMsg, status)
}

type apiError struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondJSONError(w http.ResponseWriter, log *logger.Logger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Error(logMsg, "status", status, "error", err)
	}
	respondJSON(w, status, apiError{Error: userMsg})
}

// validationMessage returns the user-facing part of a validation error
func validationMessage(err error) string {
	var verr validation.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
