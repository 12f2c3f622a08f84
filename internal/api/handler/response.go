package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-report-api/internal/usecases/rendering"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// currentUser retorna o usuário identificado pelo middleware Authenticated
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrMissingIdentity, "Usuario no identificado", nil)
	}
	return userID, ok
}

// writeServiceError traduz os erros do pipeline e do serviço de relatórios para a resposta da API.
// Falhas de validação do CSV são devolvidas com a mensagem original.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var (
		schemaErr *normalizing.SchemaError
		emptyErr  *aggregating.EmptyDatasetError
		renderErr *rendering.RenderError
		reportErr *reporting.ReportError
	)

	switch {
	case errors.As(err, &schemaErr):
		logger.Warn("CSV sem colunas obrigatórias")
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, schemaErr.Error(), map[string]any{
			"missing_columns": schemaErr.Missing,
		})

	case errors.As(err, &emptyErr):
		logger.Warn("CSV sem linhas válidas")
		apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, emptyErr.Error(), map[string]any{
			"dropped_rows": emptyErr.Dropped,
		})

	case errors.As(err, &renderErr):
		logger.Error("Erro ao gerar PDF")
		apiErrors.WriteError(w, apiErrors.ErrReportRender, "No se pudo generar el PDF del informe", nil)

	case errors.As(err, &reportErr):
		if apiErrors.StatusFor(reportErr.Code) >= http.StatusInternalServerError {
			logger.Error("Erro no serviço de relatórios")
		} else {
			logger.Warn("Requisição rejeitada pelo serviço de relatórios")
		}

		var details any
		if reportErr.EntityID != "" {
			details = map[string]string{"id": reportErr.EntityID}
		}
		apiErrors.WriteError(w, reportErr.Code, reportMessage(reportErr), details)

	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno del servidor", nil)
	}
}

func reportMessage(err *reporting.ReportError) string {
	if err.Details != "" {
		return err.Details
	}

	switch {
	case errors.Is(err, reporting.ErrReportNotFound):
		return "Informe no encontrado"
	case errors.Is(err, reporting.ErrSourceFileNotFound):
		return "Archivo no encontrado"
	case errors.Is(err, reporting.ErrFileProcessing):
		return "El archivo se está procesando"
	case errors.Is(err, reporting.ErrStorageOperation):
		return "Error al acceder al almacenamiento de archivos"
	case errors.Is(err, reporting.ErrDatabaseOperation):
		return "Error al acceder a la base de datos"
	default:
		return "Error interno del servidor"
	}
}
