package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	// UserIDHeader é o cabeçalho com o identificador do usuário, preenchido pelo gateway de autenticação
	UserIDHeader = "X-User-ID"

	maxUserIDLength = 128
)

// IdentityMiddleware lê o usuário do cabeçalho X-User-ID e o coloca no contexto.
// Requisições sem cabeçalho seguem sem usuário; as rotas protegidas usam Authenticated.
func IdentityMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := parseUserID(r.Header.Get(UserIDHeader))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID associa o usuário ao contexto
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUser, userID)
}

// UserIDFromContext retorna o usuário da requisição
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextKeyUser).(string)
	return userID, ok && userID != ""
}

func parseUserID(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > maxUserIDLength {
		return "", false
	}
	if strings.IndexFunc(value, unicode.IsControl) >= 0 || strings.ContainsAny(value, `/\`) {
		return "", false
	}
	return value, true
}
