package middleware

import (
	"encoding/json"
	"net/http"
)

// failure is the envelope middleware writes when it rejects a request.
type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func reject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(failure{Success: false, Message: msg})
}
