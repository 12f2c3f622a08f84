package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := UserIDFromContext(r.Context())
		w.Write([]byte(userID))
	})
}

func TestIdentityMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "Usuário informado", header: "u-1", expected: "u-1"},
		{name: "Espaços são removidos", header: "  u-2 ", expected: "u-2"},
		{name: "Sem cabeçalho", header: "", expected: ""},
		{name: "Identificador com barra é ignorado", header: "../u-3", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			IdentityMiddleware()(echoUser()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, rec.Body.String())
		})
	}
}

func TestAuthenticated(t *testing.T) {
	handler := IdentityMiddleware()(Authenticated()(echoUser()))

	t.Run("Sem usuário retorna 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/files", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingIdentity)
	})

	t.Run("Com usuário segue para o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/files", nil)
		req.Header.Set(UserIDHeader, "u-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u-1", rec.Body.String())
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(echoUser())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), UserIDHeader)
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/files", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	var captured *loggingResponseWriter
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = w.(*loggingResponseWriter)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("abc"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/files", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, http.StatusCreated, captured.statusCode)
	assert.Equal(t, int64(3), captured.written)
}
