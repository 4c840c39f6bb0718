package api

import (
	"encoding/json"
	"net/http"

	"otoman/internal/validate"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]any{"message": message})
}

// WriteValidationErrors renders field-level failures the way the frontend
// expects them: a flat message plus an errors map keyed by field name.
func WriteValidationErrors(w http.ResponseWriter, message string, errs validate.Errors) {
	WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"message": message,
		"errors":  errs,
	})
}
