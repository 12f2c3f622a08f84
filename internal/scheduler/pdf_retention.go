package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
)

// PDFRetentionJob é o nome da rotina usado nas rotas de cron
const PDFRetentionJob = "pdf-retention"

// PDFRetentionConfig representa a configuração da limpeza de PDFs antigos
type PDFRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// PDFRetentionService apaga periodicamente os PDFs gerados há mais de RetentionDays dias
type PDFRetentionService struct {
	scheduler           *gocron.Scheduler
	config              PDFRetentionConfig
	reportService       reporting.ReportService
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          reporting.PurgeResult
}

// NewPDFRetentionService cria uma nova instância do serviço de retenção de PDFs
func NewPDFRetentionService(reportService reporting.ReportService, appConfig *config.Config) *PDFRetentionService {
	retentionConfig := PDFRetentionConfig{
		CronSchedule:  appConfig.PDFRetention.CronSchedule,
		RetentionDays: appConfig.PDFRetention.Days,
		SyncEnabled:   appConfig.PDFRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"sync_enabled":   retentionConfig.SyncEnabled,
	}).Info("Configuração da retenção de PDFs carregada")

	return &PDFRetentionService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        retentionConfig,
		reportService: reportService,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *PDFRetentionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Retenção de PDFs desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de PDFs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purge(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de PDFs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de PDFs")
		s.scheduler.Stop()
	}()

	return nil
}

// Cutoff retorna o instante antes do qual os PDFs são considerados antigos
func (s *PDFRetentionService) Cutoff() time.Time {
	return s.now().AddDate(0, 0, -s.config.RetentionDays)
}

// acquire reserva a execução; retorna false quando outra já está em andamento
func (s *PDFRetentionService) acquire() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()

	return s.lastSyncStartedAt, true
}

// purge executa uma limpeza; retorna false quando outra já está em andamento
func (s *PDFRetentionService) purge(ctx context.Context) bool {
	startTime, ok := s.acquire()
	if !ok {
		logrus.Info("Retenção de PDFs já em andamento, ignorando")
		return false
	}

	s.run(ctx, startTime)
	return true
}

// run executa a limpeza já reservada por acquire e libera a reserva ao terminar
func (s *PDFRetentionService) run(ctx context.Context, startTime time.Time) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	cutoff := s.Cutoff()
	logrus.WithField("cutoff", cutoff.Format(time.DateTime)).Info("Iniciando retenção de PDFs")

	result, err := s.reportService.PurgeStalePDFs(ctx, cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro na retenção de PDFs")
		return
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"checked":  result.Checked,
		"deleted":  result.Deleted,
		"failed":   result.Failed,
	}).Info("Retenção de PDFs concluída")
}

// TriggerManualSync inicia manualmente uma limpeza, sem aguardar o término.
// Retorna false quando outra execução já está em andamento.
func (s *PDFRetentionService) TriggerManualSync(ctx context.Context) bool {
	startTime, ok := s.acquire()
	if !ok {
		logrus.Info("Retenção de PDFs já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando retenção manual de PDFs")
	go s.run(context.WithoutCancel(ctx), startTime)
	return true
}

// GetStatus retorna o status atual da rotina
func (s *PDFRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
