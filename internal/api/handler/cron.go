package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-api/internal/scheduler"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém as rotinas que podem ser executadas manualmente
type CronJobServices struct {
	PDFRetentionService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.PDFRetentionService != nil {
		jobs[scheduler.PDFRetentionJob] = s.PDFRetentionService
	}
	return jobs
}

// RunCronJob executa manualmente uma rotina específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger := log.ForContext(r.Context()).WithField("job", cronType)

		if cronType != scheduler.PDFRetentionJob {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de rutina inválido. Valores aceptados: "+scheduler.PDFRetentionJob, nil)
			return
		}

		job, ok := services.jobs()[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Servicio de limpieza de PDFs no disponible", nil)
			return
		}

		if !job.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "La rutina ya está en ejecución", nil)
			return
		}

		logger.Info("Rotina disparada manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Rutina iniciada con éxito",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das rotinas
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
