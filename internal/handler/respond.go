package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/sanitize"
)

// envelope is the dynamic response body. Every response carries a
// success boolean; the remaining keys vary per endpoint.
type envelope map[string]any

// writeJSON serializes v after passing every string leaf of the payload
// through the output sanitizer, so stored markup can never reach a
// client unstripped.
func writeJSON(w http.ResponseWriter, status int, v envelope) {
	w.Header().Set("Content-Type", "application/json")

	raw, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(envelope{"success": false, "message": "internal server error"})
		return
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(envelope{"success": false, "message": "internal server error"})
		return
	}

	w.WriteHeader(status)
	json.NewEncoder(w).Encode(sanitize.StripTags(data))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{"success": false, "message": msg})
}

// writeInternal suppresses error detail outside development configuration.
func writeInternal(w http.ResponseWriter, msg string, err error, dev bool) {
	body := envelope{"success": false, "message": msg}
	if dev && err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

func writeValidation(w http.ResponseWriter, errs []model.ValidationError) {
	writeJSON(w, http.StatusBadRequest, envelope{
		"success": false,
		"message": "validation failed",
		"errors":  errs,
	})
}

// NotFound is the router's fallback for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "route not found")
}
