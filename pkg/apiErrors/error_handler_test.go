package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "colunas ausentes", code: ErrMissingColumns, expectedStatus: http.StatusBadRequest},
		{name: "relatório não encontrado", code: ErrReportNotFound, expectedStatus: http.StatusNotFound},
		{name: "arquivo grande", code: ErrFileTooLarge, expectedStatus: http.StatusRequestEntityTooLarge},
		{name: "sem identidade", code: ErrMissingIdentity, expectedStatus: http.StatusUnauthorized},
		{name: "código desconhecido", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrReportRender).Code)

	apiErr := FromError(errors.New("falhou"), ErrReportRender)
	assert.Equal(t, ErrReportRender, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
