package middleware

import "net/http"

// LimitBytes caps the request body size; oversized uploads fail inside the
// handler's form parsing with a 4xx instead of exhausting memory.
func LimitBytes(max int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, max)
			next.ServeHTTP(w, r)
		})
	}
}
