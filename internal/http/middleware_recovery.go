package http

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns handler panics into a 500 fail envelope instead
// of a dropped connection.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %s %s error=%v stack=%s", r.Method, r.URL.Path, err, string(debug.Stack()))
				JSONFail(w, http.StatusInternalServerError, "Maaf, terjadi kegagalan pada server kami")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
