package handler

import (
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
)

// PDFResponse descreve um PDF recém-gerado
type PDFResponse struct {
	ReportID    string    `json:"report_id"`
	Filename    string    `json:"filename"`
	SizeBytes   int       `json:"size_bytes"`
	GeneratedAt time.Time `json:"generated_at"`
}

func ListReports(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		reports, err := service.ListReports(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, reports)
	})
}

func GetReport(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		report, err := service.GetReport(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GeneratePDF gera novamente o PDF de um relatório
func GeneratePDF(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		artifact, err := service.GeneratePDF(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, PDFResponse{
			ReportID:    id,
			Filename:    artifact.Filename,
			SizeBytes:   len(artifact.Content),
			GeneratedAt: artifact.GeneratedAt,
		})
	})
}

// DownloadPDF envia o PDF do relatório como anexo
func DownloadPDF(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		artifact, err := service.DownloadPDF(r.Context(), userID, id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Content)))
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": artifact.Filename,
		}))
		w.WriteHeader(http.StatusOK)
		w.Write(artifact.Content)
	})
}

func DashboardSummary(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		summary, err := service.DashboardSummary(r.Context(), userID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}
