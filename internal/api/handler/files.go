package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

const (
	uploadFormField = "file"

	// Margem para os cabeçalhos e delimitadores do multipart
	multipartOverhead = 1 << 20
	multipartMemory   = 32 << 20
)

// UploadFile recebe um CSV em multipart/form-data (campo "file"), armazena e processa
func UploadFile(service reporting.ReportService, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "El archivo excede el tamaño máximo permitido", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Se esperaba un formulario multipart", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se envió ningún archivo", nil)
			return
		}
		defer file.Close()

		if header.Size > maxBytes {
			apiErrors.WriteError(w, apiErrors.ErrFileTooLarge, "El archivo excede el tamaño máximo permitido", nil)
			return
		}

		content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao ler arquivo enviado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "No se pudo leer el archivo", nil)
			return
		}

		result, err := service.Upload(r.Context(), reporting.UploadInput{
			OwnerID:  userID,
			FileName: header.Filename,
			Content:  content,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		status := http.StatusCreated
		if result.Duplicate {
			status = http.StatusOK
		}
		writeJSON(w, r, status, result)
	})
}

func ListFiles(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		files, err := service.ListSourceFiles(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, files)
	})
}

func ReprocessFile(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		report, err := service.Reprocess(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

func DeleteFile(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteSourceFile(r.Context(), userID, id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
