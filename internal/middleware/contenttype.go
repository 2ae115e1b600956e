package middleware

import (
	"net/http"
	"strings"
)

var allowedContentTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
}

// RequireJSON returns 415 for body-carrying methods whose Content-Type
// is not one of the allowed types.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			ct := r.Header.Get("Content-Type")
			if !contentTypeAllowed(ct) {
				reject(w, http.StatusUnsupportedMediaType, "unsupported content type")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func contentTypeAllowed(ct string) bool {
	for _, allowed := range allowedContentTypes {
		if strings.Contains(ct, allowed) {
			return true
		}
	}
	return false
}
