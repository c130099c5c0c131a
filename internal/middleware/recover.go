package middleware

import (
	"log"
	"net/http"
)

// Recover is the top-level fallback for uncaught failures: handlers do not
// wrap their own store or provider calls, so anything that panics surfaces
// here as a generic server error.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, err)
				http.Error(w, `{"error":true,"message":"internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
