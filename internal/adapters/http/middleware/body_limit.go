package middleware

import "net/http"

// BodyLimit caps request bodies at limit bytes. Reads past the cap fail with
// *http.MaxBytesError, which handlers report as 413. A limit <= 0 disables
// the cap.
func BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
