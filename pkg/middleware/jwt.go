package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"sixwings/pkg/claims"
	"sixwings/pkg/token"
)

var (
	// Routes reachable without a bearer token. Everything else under /api
	// requires a valid access token.
	noSessUrls = map[string]string{
		"/api/login":         http.MethodPost,
		"/api/register":      http.MethodPost,
		"/api/refresh-token": http.MethodPost,
		"/api/categorias":    http.MethodGet,
		"/api/produtos/{category:[a-z-]+}":                              http.MethodGet,
		"/api/produtos/{category:[a-z-]+}/{subcategory:[a-z-]+}":        http.MethodGet,
		"/api/produto/{product_id:[a-zA-Z0-9]+}":                        http.MethodGet,
	}
)

func CheckJWT(tokens token.ServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := mux.CurrentRoute(r)
			template, err := route.GetPathTemplate()

			if err != nil {
				http.Error(w, "Route not found", http.StatusNotFound)
				return
			}

			if method, ok := noSessUrls[template]; ok && method == r.Method {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			parsed, err := tokens.ParseAccess(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, parsed)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
