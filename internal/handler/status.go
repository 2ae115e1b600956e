package handler

import (
	"net/http"
	"time"
)

var startedAt = time.Now()

// HandleIndex handles GET / requests with the endpoint map.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "shoplite REST API",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"auth": map[string]string{
				"register": "POST /api/auth/register",
				"login":    "POST /api/auth/login",
				"profile":  "GET /api/auth/profile (token required)",
				"users":    "GET /api/auth/users (admin token required)",
			},
			"products": map[string]string{
				"getAll":     "GET /api/products",
				"getOne":     "GET /api/products/{id}",
				"create":     "POST /api/products (token required)",
				"update":     "PUT /api/products/{id} (token required)",
				"delete":     "DELETE /api/products/{id} (token required)",
				"myProducts": "GET /api/products/user/my-products (token required)",
			},
		},
	})
}

// HandleStatus handles GET /api/status requests.
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"success":   true,
		"status":    "online",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startedAt).Seconds(),
	})
}

// HandleHealth handles GET /health liveness probes.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
