package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
)

func Panic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Println("Panic recover on", r.Method, r.URL.Path, "\n", string(debug.Stack()))
				http.Error(w, "Internal server error", 500)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
