package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// Authenticated restringe a rota a requisições com usuário identificado
func Authenticated() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Tentativa de acesso sem identificação")
				apiErrors.WriteError(w, apiErrors.ErrMissingIdentity, "Usuario no identificado", nil)
				return
			}

			ctx := log.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
