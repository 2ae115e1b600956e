package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/shoplite/shoplite-go/internal/sanitize"
)

const maxBodyBytes = 1 << 20 // 1MB

// Sanitize returns middleware that rewrites the JSON request body and
// the query string before any handler sees them: the NoSQL-operator
// deny list rejects the request outright with 400, and surviving string
// leaves are HTML-escaped with $ [ ] { } stripped. The original body is
// replaced with the rewritten copy; handlers decode normalized input.
//
// The URL path is scanned against the same deny list but never
// rewritten, so routing is unaffected. Path parameters carry no further
// markup risk here: the only parameterized segment is a numeric id,
// which handlers parse with strconv before use.
func Sanitize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := sanitize.CheckInjection(r.URL.Path); err != nil {
			reject(w, http.StatusBadRequest, "potentially dangerous request")
			return
		}

		query, err := sanitizeQuery(r.URL.Query())
		if err != nil {
			reject(w, http.StatusBadRequest, "potentially dangerous request")
			return
		}
		r.URL.RawQuery = query.Encode()

		if r.Body != nil && r.ContentLength != 0 {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			if err != nil {
				reject(w, http.StatusBadRequest, "invalid request body")
				return
			}
			r.Body.Close()

			rewritten, err := sanitizeBody(body)
			if errors.Is(err, sanitize.ErrInjection) {
				reject(w, http.StatusBadRequest, "potentially dangerous request")
				return
			}
			if err == nil {
				body = rewritten
			}
			// Malformed JSON passes through untouched; the handler's
			// decoder reports the 400.
			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
		}

		next.ServeHTTP(w, r)
	})
}

func sanitizeBody(body []byte) ([]byte, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}

	checked, err := sanitize.CheckInjection(data)
	if err != nil {
		return nil, err
	}

	return json.Marshal(sanitize.Escape(checked))
}

func sanitizeQuery(values url.Values) (url.Values, error) {
	data := make(map[string]any, len(values))
	for key, vals := range values {
		items := make([]any, len(vals))
		for i, v := range vals {
			items[i] = v
		}
		data[key] = items
	}

	checked, err := sanitize.CheckInjection(data)
	if err != nil {
		return nil, err
	}
	escaped := sanitize.Escape(checked).(map[string]any)

	out := make(url.Values, len(escaped))
	for key, vals := range escaped {
		for _, v := range vals.([]any) {
			out.Add(key, v.(string))
		}
	}
	return out, nil
}
