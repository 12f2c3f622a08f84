package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newRetentionService(t *testing.T, days int) (*PDFRetentionService, *mocks.MockReportService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reportService := mocks.NewMockReportService(ctrl)

	service := NewPDFRetentionService(reportService, &config.Config{
		PDFRetention: config.PDFRetention{CronSchedule: "0 2 * * *", Days: days, Enabled: true},
	})
	service.now = func() time.Time { return time.Date(2024, 3, 31, 2, 0, 0, 0, time.UTC) }

	return service, reportService
}

func TestPDFRetentionService_purge(t *testing.T) {
	cutoff := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(m *mocks.MockReportService)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Remove PDFs anteriores ao limite de retenção",
			setup: func(m *mocks.MockReportService) {
				m.EXPECT().
					PurgeStalePDFs(gomock.Any(), cutoff).
					Return(reporting.PurgeResult{Checked: 4, Deleted: 3, Failed: 1}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, reporting.PurgeResult{Checked: 4, Deleted: 3, Failed: 1}, status["last_result"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name: "Erro no serviço não marca a execução como concluída",
			setup: func(m *mocks.MockReportService) {
				m.EXPECT().
					PurgeStalePDFs(gomock.Any(), cutoff).
					Return(reporting.PurgeResult{}, errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
				assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, reportService := newRetentionService(t, 30)
			tt.setup(reportService)

			assert.True(t, service.purge(context.Background()))
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestPDFRetentionService_singleFlight(t *testing.T) {
	service, reportService := newRetentionService(t, 30)

	started := make(chan struct{})
	release := make(chan struct{})
	reportService.EXPECT().
		PurgeStalePDFs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) (reporting.PurgeResult, error) {
			close(started)
			<-release
			return reporting.PurgeResult{}, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.purge(context.Background())
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["sync_running"])
	assert.False(t, service.purge(context.Background()))
	assert.False(t, service.TriggerManualSync(context.Background()))

	close(release)
	wg.Wait()
	assert.Equal(t, false, service.GetStatus()["sync_running"])
}

func TestPDFRetentionService_TriggerManualSync(t *testing.T) {
	service, reportService := newRetentionService(t, 7)

	done := make(chan struct{})
	reportService.EXPECT().
		PurgeStalePDFs(gomock.Any(), time.Date(2024, 3, 24, 2, 0, 0, 0, time.UTC)).
		DoAndReturn(func(ctx context.Context, _ time.Time) (reporting.PurgeResult, error) {
			defer close(done)
			return reporting.PurgeResult{Checked: 1, Deleted: 1}, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, service.TriggerManualSync(ctx))
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("a limpeza manual não foi executada")
	}
}

func TestPDFRetentionService_TriggerManualSync_Concurrent(t *testing.T) {
	service, reportService := newRetentionService(t, 30)

	release := make(chan struct{})
	done := make(chan struct{})
	reportService.EXPECT().
		PurgeStalePDFs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) (reporting.PurgeResult, error) {
			defer close(done)
			<-release
			return reporting.PurgeResult{}, nil
		}).
		Times(1)

	// O segundo disparo é recusado mesmo antes da primeira limpeza começar
	require.True(t, service.TriggerManualSync(context.Background()))
	assert.Equal(t, true, service.GetStatus()["sync_running"])
	assert.False(t, service.TriggerManualSync(context.Background()))
	assert.False(t, service.purge(context.Background()))

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("a limpeza manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPDFRetentionService_StartDisabled(t *testing.T) {
	service, _ := newRetentionService(t, 30)
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
