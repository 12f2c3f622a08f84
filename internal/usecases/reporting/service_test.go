package reporting_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	repomocks "github.com/vfg2006/sales-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-api/infrastructure/storage"
	storagemocks "github.com/vfg2006/sales-report-api/infrastructure/storage/mocks"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-report-api/internal/usecases/rendering"
	renderingmocks "github.com/vfg2006/sales-report-api/internal/usecases/rendering/mocks"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
)

var generatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type deps struct {
	sourceFiles *repomocks.MockSourceFileRepository
	reports     *repomocks.MockReportRepository
	store       *storagemocks.MockArtifactStore
	renderer    *renderingmocks.MockRenderer
}

func newService(t *testing.T) (reporting.ReportService, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := deps{
		sourceFiles: repomocks.NewMockSourceFileRepository(ctrl),
		reports:     repomocks.NewMockReportRepository(ctrl),
		store:       storagemocks.NewMockArtifactStore(ctrl),
		renderer:    renderingmocks.NewMockRenderer(ctrl),
	}
	pipeline := reporting.NewPipeline(normalizing.NewNormalizer(), d.renderer)
	service := reporting.NewService(d.sourceFiles, d.reports, d.store, pipeline, config.Upload{MaxBytes: 1 << 20})
	return service, d
}

func sourceFile(status string) *domain.SourceFile {
	return &domain.SourceFile{
		ID:           "f1",
		OwnerID:      "u1",
		OriginalName: "ventas.csv",
		StorageKey:   "csv_files/u1/f1.csv",
		Checksum:     reporting.Checksum([]byte(widgetCSV)),
		Status:       status,
	}
}

func pdfArtifact() domain.ReportArtifact {
	return domain.ReportArtifact{
		Filename:    "informe_ventas_20240301_100000.pdf",
		Content:     []byte("%PDF-1.3"),
		GeneratedAt: generatedAt,
	}
}

// expectProcessing registra as chamadas de um processamento bem-sucedido de f1
func expectProcessing(d deps, file *domain.SourceFile, previous *domain.Report) {
	d.sourceFiles.EXPECT().GetByID(gomock.Any(), file.ID).Return(file, nil)
	d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), file.ID, domain.StatusProcessing, nil).Return(nil)
	d.store.EXPECT().Get(gomock.Any(), file.StorageKey).Return([]byte(widgetCSV), nil)
	d.reports.EXPECT().GetBySourceFileID(gomock.Any(), file.ID).Return(previous, nil)
	d.reports.EXPECT().ReplaceForSource(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *domain.Report, records []domain.SalesRecord) error {
			if report.SourceFileID != file.ID || len(records) != 3 {
				return errors.New("relatório inesperado")
			}
			return nil
		})
	d.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), file.OriginalName).Return(pdfArtifact(), nil)
	d.store.EXPECT().Put(gomock.Any(), gomock.Any(), pdfArtifact().Content, storage.ContentTypePDF).Return(nil)
	d.reports.EXPECT().SetPDF(gomock.Any(), gomock.Any(), gomock.Any(), generatedAt).Return(nil)
	d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), file.ID, domain.StatusCompleted, nil).Return(nil)
}

func assertReportError(t *testing.T, err error, target error, code string) {
	t.Helper()
	require.ErrorIs(t, err, target)
	var reportErr *reporting.ReportError
	require.ErrorAs(t, err, &reportErr)
	assert.Equal(t, code, reportErr.Code)
}

func TestService_Upload(t *testing.T) {
	tests := []struct {
		name     string
		input    reporting.UploadInput
		setup    func(d deps)
		validate func(t *testing.T, result *reporting.UploadResult, err error)
	}{
		{
			name:  "novo arquivo é armazenado e processado",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.csv", Content: []byte(widgetCSV)},
			setup: func(d deps) {
				var created *domain.SourceFile
				d.sourceFiles.EXPECT().GetByChecksum(gomock.Any(), "u1", reporting.Checksum([]byte(widgetCSV))).Return(nil, nil)
				d.store.EXPECT().Put(gomock.Any(), gomock.Any(), []byte(widgetCSV), storage.ContentTypeCSV).Return(nil)
				d.sourceFiles.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, file *domain.SourceFile) error {
						created = file
						return nil
					})
				d.sourceFiles.EXPECT().GetByID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, id string) (*domain.SourceFile, error) {
						return created, nil
					})
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusProcessing, nil).Return(nil)
				d.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte(widgetCSV), nil)
				d.reports.EXPECT().GetBySourceFileID(gomock.Any(), gomock.Any()).Return(nil, nil)
				d.reports.EXPECT().ReplaceForSource(gomock.Any(), gomock.Any(), gomock.Len(3)).Return(nil)
				d.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), "ventas.csv").Return(pdfArtifact(), nil)
				d.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), storage.ContentTypePDF).Return(nil)
				d.reports.EXPECT().SetPDF(gomock.Any(), gomock.Any(), gomock.Any(), generatedAt).Return(nil)
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.StatusCompleted, nil).Return(nil)
			},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.Duplicate)
				assert.Equal(t, "u1", result.SourceFile.OwnerID)
				assert.Equal(t, storage.SourceFileKey("u1", result.SourceFile.ID), result.SourceFile.StorageKey)
				assert.Equal(t, domain.StatusCompleted, result.SourceFile.Status)
				assert.Equal(t, int64(len(widgetCSV)), result.SourceFile.SizeBytes)

				require.NotNil(t, result.Report)
				assert.True(t, result.Report.Aggregation.TotalSales.Equal(decimal.NewFromInt(300)))
				require.True(t, result.Report.HasPDF())
				assert.Equal(t, storage.PDFKey(result.Report.ID, pdfArtifact().Filename), *result.Report.PDFKey)
			},
		},
		{
			name:  "upload repetido reaproveita o relatório",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "copia.csv", Content: []byte(widgetCSV)},
			setup: func(d deps) {
				d.sourceFiles.EXPECT().GetByChecksum(gomock.Any(), "u1", gomock.Any()).Return(sourceFile(domain.StatusCompleted), nil)
				d.reports.EXPECT().GetBySourceFileID(gomock.Any(), "f1").Return(&domain.Report{ID: "r1", SourceFileID: "f1"}, nil)
			},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Duplicate)
				assert.Equal(t, "f1", result.SourceFile.ID)
				assert.Equal(t, "r1", result.Report.ID)
			},
		},
		{
			name:  "upload repetido de arquivo com erro é reprocessado",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.csv", Content: []byte(widgetCSV)},
			setup: func(d deps) {
				file := sourceFile(domain.StatusError)
				d.sourceFiles.EXPECT().GetByChecksum(gomock.Any(), "u1", gomock.Any()).Return(file, nil)
				expectProcessing(d, file, nil)
			},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Duplicate)
				assert.Equal(t, domain.StatusCompleted, result.SourceFile.Status)
				assert.NotNil(t, result.Report)
			},
		},
		{
			name:  "extensão não suportada",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.xlsx", Content: []byte("x")},
			setup: func(d deps) {},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				assertReportError(t, err, reporting.ErrUnsupportedFileType, apiErrors.ErrUnsupportedFileType)
			},
		},
		{
			name:  "arquivo vazio",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.CSV"},
			setup: func(d deps) {},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				assertReportError(t, err, reporting.ErrEmptyFile, apiErrors.ErrInvalidRequest)
			},
		},
		{
			name:  "arquivo maior que o limite",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.csv", Content: []byte(strings.Repeat("a", 1<<20+1))},
			setup: func(d deps) {},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				assertReportError(t, err, reporting.ErrFileTooLarge, apiErrors.ErrFileTooLarge)
			},
		},
		{
			name:  "sem usuário",
			input: reporting.UploadInput{FileName: "ventas.csv", Content: []byte(widgetCSV)},
			setup: func(d deps) {},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				assertReportError(t, err, reporting.ErrOwnerRequired, apiErrors.ErrMissingIdentity)
			},
		},
		{
			name:  "falha no armazenamento",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.csv", Content: []byte(widgetCSV)},
			setup: func(d deps) {
				d.sourceFiles.EXPECT().GetByChecksum(gomock.Any(), "u1", gomock.Any()).Return(nil, nil)
				d.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), storage.ContentTypeCSV).Return(errors.New("bucket indisponível"))
			},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				assertReportError(t, err, reporting.ErrStorageOperation, apiErrors.ErrStorageOperation)
			},
		},
		{
			name:  "corrida com upload idêntico",
			input: reporting.UploadInput{OwnerID: "u1", FileName: "ventas.csv", Content: []byte(widgetCSV)},
			setup: func(d deps) {
				gomock.InOrder(
					d.sourceFiles.EXPECT().GetByChecksum(gomock.Any(), "u1", gomock.Any()).Return(nil, nil),
					d.sourceFiles.EXPECT().GetByChecksum(gomock.Any(), "u1", gomock.Any()).Return(sourceFile(domain.StatusProcessing), nil),
				)
				d.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), storage.ContentTypeCSV).Return(nil)
				d.sourceFiles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateSourceFile)
				d.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *reporting.UploadResult, err error) {
				require.NoError(t, err)
				assert.True(t, result.Duplicate)
				assert.Nil(t, result.Report)
				assert.Equal(t, domain.StatusProcessing, result.SourceFile.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := newService(t)
			tt.setup(d)

			result, err := service.Upload(context.Background(), tt.input)
			tt.validate(t, result, err)
		})
	}
}

func TestService_Process(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(d deps)
		validate func(t *testing.T, report *domain.Report, err error)
	}{
		{
			name: "substitui relatório anterior e remove o PDF antigo",
			setup: func(d deps) {
				oldKey := "pdfs/r0/informe_ventas_20240101_090000.pdf"
				expectProcessing(d, sourceFile(domain.StatusCompleted), &domain.Report{ID: "r0", SourceFileID: "f1", PDFKey: &oldKey})
				d.store.EXPECT().Delete(gomock.Any(), oldKey).Return(nil)
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				require.NoError(t, err)
				assert.Equal(t, "f1", report.SourceFileID)
				assert.Equal(t, 3, report.Aggregation.TotalRecords)
				assert.Equal(t, 0, report.DroppedRows)
			},
		},
		{
			name: "coluna ausente marca o arquivo com erro",
			setup: func(d deps) {
				file := sourceFile(domain.StatusUploaded)
				d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), "f1", domain.StatusProcessing, nil).Return(nil)
				d.store.EXPECT().Get(gomock.Any(), file.StorageKey).Return([]byte("date,product\n2024-01-01,Widget\n"), nil)
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), "f1", domain.StatusError, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ string, message *string) error {
						if message == nil || *message != "Columna requerida 'sales_amount' no encontrada en el CSV" {
							return errors.New("mensagem inesperada")
						}
						return nil
					})
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assert.Nil(t, report)
				var schemaErr *normalizing.SchemaError
				require.ErrorAs(t, err, &schemaErr)
				assert.Equal(t, "Columna requerida 'sales_amount' no encontrada en el CSV", err.Error())
			},
		},
		{
			name: "nenhuma linha válida",
			setup: func(d deps) {
				file := sourceFile(domain.StatusUploaded)
				d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), "f1", domain.StatusProcessing, nil).Return(nil)
				d.store.EXPECT().Get(gomock.Any(), file.StorageKey).Return([]byte("date,product,sales_amount\nxx,Widget,1\n"), nil)
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), "f1", domain.StatusError, gomock.Not(gomock.Nil())).Return(nil)
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assert.ErrorIs(t, err, aggregating.ErrEmptyDataset)
			},
		},
		{
			name: "falha na renderização mantém os dados e marca erro",
			setup: func(d deps) {
				file := sourceFile(domain.StatusUploaded)
				d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), "f1", domain.StatusProcessing, nil).Return(nil)
				d.store.EXPECT().Get(gomock.Any(), file.StorageKey).Return([]byte(widgetCSV), nil)
				d.reports.EXPECT().GetBySourceFileID(gomock.Any(), "f1").Return(nil, nil)
				d.reports.EXPECT().ReplaceForSource(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.ReportArtifact{}, rendering.NewRenderError(rendering.ErrEmptyDocument, "", nil))
				d.sourceFiles.EXPECT().UpdateStatus(gomock.Any(), "f1", domain.StatusError, gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assert.ErrorIs(t, err, rendering.ErrEmptyDocument)
			},
		},
		{
			name: "arquivo inexistente",
			setup: func(d deps) {
				d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.Report, err error) {
				assertReportError(t, err, reporting.ErrSourceFileNotFound, apiErrors.ErrSourceFileNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := newService(t)
			tt.setup(d)

			report, err := service.Process(context.Background(), "f1")
			tt.validate(t, report, err)
		})
	}
}

func TestService_Reprocess(t *testing.T) {
	t.Run("arquivo de outro usuário", func(t *testing.T) {
		service, d := newService(t)
		d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(sourceFile(domain.StatusCompleted), nil)

		_, err := service.Reprocess(context.Background(), "intruso", "f1")
		assertReportError(t, err, reporting.ErrSourceFileNotFound, apiErrors.ErrSourceFileNotFound)
	})

	t.Run("arquivo em processamento", func(t *testing.T) {
		service, d := newService(t)
		file := sourceFile(domain.StatusProcessing)
		file.UpdatedAt = time.Now()
		d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)

		_, err := service.Reprocess(context.Background(), "u1", "f1")
		assertReportError(t, err, reporting.ErrFileProcessing, apiErrors.ErrFileProcessing)
	})

	t.Run("processamento interrompido pode ser retomado", func(t *testing.T) {
		service, d := newService(t)
		file := sourceFile(domain.StatusProcessing)
		file.UpdatedAt = time.Now().Add(-reporting.ProcessingTimeout - time.Minute)
		d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)
		expectProcessing(d, file, nil)

		_, err := service.Reprocess(context.Background(), "u1", "f1")
		require.NoError(t, err)
	})

	t.Run("dono reprocessa", func(t *testing.T) {
		service, d := newService(t)
		file := sourceFile(domain.StatusCompleted)
		d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)
		expectProcessing(d, file, nil)

		report, err := service.Reprocess(context.Background(), "u1", "f1")
		require.NoError(t, err)
		assert.True(t, report.HasPDF())
	})
}

func storedReport() *domain.Report {
	key := "pdfs/r1/informe_ventas_20240201_080000.pdf"
	created := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	return &domain.Report{
		ID:             "r1",
		SourceFileID:   "f1",
		Aggregation:    domain.AggregationResult{TotalSales: decimal.NewFromInt(300), TotalRecords: 3},
		Insights:       domain.InsightSet{"Las ventas totales fueron S/ 300.00."},
		PDFKey:         &key,
		PDFGeneratedAt: &created,
	}
}

func TestService_DownloadPDF(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(d deps)
		validate func(t *testing.T, artifact domain.ReportArtifact, err error)
	}{
		{
			name: "PDF armazenado",
			setup: func(d deps) {
				d.reports.EXPECT().GetByID(gomock.Any(), "u1", "r1").Return(storedReport(), nil)
				d.store.EXPECT().Get(gomock.Any(), *storedReport().PDFKey).Return([]byte("%PDF-old"), nil)
			},
			validate: func(t *testing.T, artifact domain.ReportArtifact, err error) {
				require.NoError(t, err)
				assert.Equal(t, "informe_ventas_20240201_080000.pdf", artifact.Filename)
				assert.Equal(t, []byte("%PDF-old"), artifact.Content)
				assert.Equal(t, *storedReport().PDFGeneratedAt, artifact.GeneratedAt)
			},
		},
		{
			name: "PDF removido do armazenamento é gerado novamente",
			setup: func(d deps) {
				report := storedReport()
				d.reports.EXPECT().GetByID(gomock.Any(), "u1", "r1").Return(report, nil)
				d.store.EXPECT().Get(gomock.Any(), *report.PDFKey).Return(nil, storage.ErrObjectNotFound)
				expectRegeneration(d, *report.PDFKey)
			},
			validate: func(t *testing.T, artifact domain.ReportArtifact, err error) {
				require.NoError(t, err)
				assert.Equal(t, pdfArtifact().Filename, artifact.Filename)
			},
		},
		{
			name: "relatório sem PDF",
			setup: func(d deps) {
				report := storedReport()
				report.PDFKey = nil
				report.PDFGeneratedAt = nil
				d.reports.EXPECT().GetByID(gomock.Any(), "u1", "r1").Return(report, nil)
				expectRegeneration(d, "")
			},
			validate: func(t *testing.T, artifact domain.ReportArtifact, err error) {
				require.NoError(t, err)
				assert.Equal(t, pdfArtifact().Content, artifact.Content)
			},
		},
		{
			name: "relatório de outro usuário",
			setup: func(d deps) {
				d.reports.EXPECT().GetByID(gomock.Any(), "u1", "r1").Return(nil, nil)
			},
			validate: func(t *testing.T, artifact domain.ReportArtifact, err error) {
				assertReportError(t, err, reporting.ErrReportNotFound, apiErrors.ErrReportNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := newService(t)
			tt.setup(d)

			artifact, err := service.DownloadPDF(context.Background(), "u1", "r1")
			tt.validate(t, artifact, err)
		})
	}
}

// expectRegeneration registra uma nova renderização de r1 a partir da amostra persistida
func expectRegeneration(d deps, previousKey string) {
	sample := []domain.SalesRecord{{Product: "Widget", SalesAmount: decimal.NewFromInt(100)}}
	newKey := storage.PDFKey("r1", pdfArtifact().Filename)

	d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(sourceFile(domain.StatusCompleted), nil)
	d.reports.EXPECT().GetSample(gomock.Any(), "r1", uint64(domain.SampleSize)).Return(sample, nil)
	d.renderer.EXPECT().Render(gomock.Any(), gomock.Any(), sample, "ventas.csv").Return(pdfArtifact(), nil)
	d.store.EXPECT().Put(gomock.Any(), newKey, pdfArtifact().Content, storage.ContentTypePDF).Return(nil)
	d.reports.EXPECT().SetPDF(gomock.Any(), "r1", newKey, generatedAt).Return(nil)
	if previousKey != "" {
		d.store.EXPECT().Delete(gomock.Any(), previousKey).Return(nil)
	}
}

func TestService_GeneratePDF(t *testing.T) {
	service, d := newService(t)
	report := storedReport()
	d.reports.EXPECT().GetByID(gomock.Any(), "u1", "r1").Return(report, nil)
	expectRegeneration(d, *report.PDFKey)

	artifact, err := service.GeneratePDF(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, pdfArtifact(), artifact)
}

func TestService_DeleteSourceFile(t *testing.T) {
	service, d := newService(t)
	file := sourceFile(domain.StatusCompleted)
	report := storedReport()

	d.sourceFiles.EXPECT().GetByID(gomock.Any(), "f1").Return(file, nil)
	d.reports.EXPECT().GetBySourceFileID(gomock.Any(), "f1").Return(report, nil)
	d.sourceFiles.EXPECT().Delete(gomock.Any(), "f1").Return(nil)
	d.store.EXPECT().Delete(gomock.Any(), file.StorageKey).Return(nil)
	d.store.EXPECT().Delete(gomock.Any(), *report.PDFKey).Return(errors.New("falha transitória"))

	assert.NoError(t, service.DeleteSourceFile(context.Background(), "u1", "f1"))
}

func TestService_DashboardSummary(t *testing.T) {
	service, d := newService(t)
	recent := []domain.ReportSummary{{ID: "r1", FileName: "ventas.csv", TotalSales: "300.00"}}

	d.sourceFiles.EXPECT().CountByStatus(gomock.Any(), "u1").
		Return(domain.StatusCount{domain.StatusCompleted: 3, domain.StatusError: 1, domain.StatusUploaded: 1}, nil)
	d.reports.EXPECT().GetTotals(gomock.Any(), "u1").
		Return(repository.ReportTotals{Reports: 3, Sales: decimal.RequireFromString("1234.5"), Records: 42}, nil)
	d.reports.EXPECT().ListByOwner(gomock.Any(), "u1", uint64(reporting.RecentReportsLimit)).Return(recent, nil)

	summary, err := service.DashboardSummary(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &domain.DashboardSummary{
		TotalFiles:     5,
		ProcessedFiles: 3,
		FailedFiles:    1,
		TotalReports:   3,
		TotalSales:     "1234.50",
		TotalRecords:   42,
		RecentReports:  recent,
	}, summary)
}

func TestService_PurgeStalePDFs(t *testing.T) {
	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(d deps)
		validate func(t *testing.T, result reporting.PurgeResult, err error)
	}{
		{
			name: "remove PDFs e limpa referências",
			setup: func(d deps) {
				d.reports.EXPECT().ListStalePDFs(gomock.Any(), cutoff).Return([]domain.StoredPDF{
					{ReportID: "r1", Key: "pdfs/r1/a.pdf"},
					{ReportID: "r2", Key: "pdfs/r2/b.pdf"},
					{ReportID: "r3", Key: "pdfs/r3/c.pdf"},
				}, nil)
				d.store.EXPECT().Delete(gomock.Any(), "pdfs/r1/a.pdf").Return(nil)
				d.reports.EXPECT().ClearPDF(gomock.Any(), "r1").Return(nil)
				d.store.EXPECT().Delete(gomock.Any(), "pdfs/r2/b.pdf").Return(errors.New("acesso negado"))
				d.store.EXPECT().Delete(gomock.Any(), "pdfs/r3/c.pdf").Return(nil)
				d.reports.EXPECT().ClearPDF(gomock.Any(), "r3").Return(nil)
			},
			validate: func(t *testing.T, result reporting.PurgeResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, reporting.PurgeResult{Checked: 3, Deleted: 2, Failed: 1}, result)
			},
		},
		{
			name: "erro ao consultar",
			setup: func(d deps) {
				d.reports.EXPECT().ListStalePDFs(gomock.Any(), cutoff).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result reporting.PurgeResult, err error) {
				assertReportError(t, err, reporting.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, d := newService(t)
			tt.setup(d)

			result, err := service.PurgeStalePDFs(context.Background(), cutoff)
			tt.validate(t, result, err)
		})
	}
}
