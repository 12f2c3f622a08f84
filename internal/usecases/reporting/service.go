package reporting

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/infrastructure/storage"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

const (
	// RecentReportsLimit é a quantidade de relatórios exibidos no dashboard
	RecentReportsLimit = 5

	// ProcessingTimeout é o tempo após o qual um arquivo preso em processamento pode ser reprocessado
	ProcessingTimeout = 10 * time.Minute
)

// UploadInput é um CSV recebido pela API
type UploadInput struct {
	OwnerID  string
	FileName string
	Content  []byte
}

// UploadResult é o arquivo registrado e o relatório produzido a partir dele
type UploadResult struct {
	SourceFile *domain.SourceFile `json:"source_file"`
	Report     *domain.Report     `json:"report,omitempty"`
	Duplicate  bool               `json:"duplicate"`
}

// PurgeResult resume uma execução da limpeza de PDFs antigos
type PurgeResult struct {
	Checked int `json:"checked"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

type ReportService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Process(ctx context.Context, sourceFileID string) (*domain.Report, error)
	Reprocess(ctx context.Context, ownerID, sourceFileID string) (*domain.Report, error)
	GetReport(ctx context.Context, ownerID, reportID string) (*domain.Report, error)
	ListReports(ctx context.Context, ownerID string) ([]domain.ReportSummary, error)
	ListSourceFiles(ctx context.Context, ownerID string) ([]*domain.SourceFile, error)
	GeneratePDF(ctx context.Context, ownerID, reportID string) (domain.ReportArtifact, error)
	DownloadPDF(ctx context.Context, ownerID, reportID string) (domain.ReportArtifact, error)
	DeleteSourceFile(ctx context.Context, ownerID, sourceFileID string) error
	DashboardSummary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error)
	PurgeStalePDFs(ctx context.Context, olderThan time.Time) (PurgeResult, error)
}

type Service struct {
	sourceFiles repository.SourceFileRepository
	reports     repository.ReportRepository
	store       storage.ArtifactStore
	pipeline    Pipeline
	uploadCfg   config.Upload
}

func NewService(
	sourceFiles repository.SourceFileRepository,
	reports repository.ReportRepository,
	store storage.ArtifactStore,
	pipeline Pipeline,
	uploadCfg config.Upload,
) ReportService {
	return &Service{
		sourceFiles: sourceFiles,
		reports:     reports,
		store:       store,
		pipeline:    pipeline,
		uploadCfg:   uploadCfg,
	}
}

// Checksum identifica o conteúdo de um upload
func Checksum(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if err := s.validateUpload(input); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id":   input.OwnerID,
		"file_name": input.FileName,
	})

	checksum := Checksum(input.Content)
	existing, err := s.sourceFiles.GetByChecksum(ctx, input.OwnerID, checksum)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}
	if existing != nil {
		logger.WithField("source_file_id", existing.ID).Info("Upload repetido, reaproveitando arquivo existente")
		return s.reuse(ctx, existing)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrGenerateID, apiErrors.ErrInternalServer, "No se pudo generar el identificador del archivo")
	}

	file := &domain.SourceFile{
		ID:           id,
		OwnerID:      input.OwnerID,
		OriginalName: path.Base(strings.ReplaceAll(input.FileName, `\`, "/")),
		StorageKey:   storage.SourceFileKey(input.OwnerID, id),
		Checksum:     checksum,
		SizeBytes:    int64(len(input.Content)),
		Status:       domain.StatusUploaded,
	}

	if err := s.store.Put(ctx, file.StorageKey, input.Content, storage.ContentTypeCSV); err != nil {
		return nil, NewReportErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, file.ID, err)
	}

	if err := s.sourceFiles.Create(ctx, file); err != nil {
		s.deleteObject(ctx, file.StorageKey)

		// Outro upload do mesmo conteúdo venceu a corrida
		if errors.Is(err, repository.ErrDuplicateSourceFile) {
			existing, getErr := s.sourceFiles.GetByChecksum(ctx, input.OwnerID, checksum)
			if getErr == nil && existing != nil {
				return s.reuse(ctx, existing)
			}
		}
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	logger.WithFields(log.Fields{
		"source_file_id": file.ID,
		"size_bytes":     file.SizeBytes,
	}).Info("Arquivo recebido")

	report, err := s.Process(ctx, file.ID)
	if err != nil {
		return nil, err
	}

	file.Status = domain.StatusCompleted
	return &UploadResult{SourceFile: file, Report: report}, nil
}

func (s *Service) validateUpload(input UploadInput) error {
	if input.OwnerID == "" {
		return NewReportError(ErrOwnerRequired, apiErrors.ErrMissingIdentity, "Usuario no identificado")
	}
	if !strings.EqualFold(path.Ext(input.FileName), ".csv") {
		return NewReportError(ErrUnsupportedFileType, apiErrors.ErrUnsupportedFileType, "Solo se permiten archivos CSV")
	}
	if len(input.Content) == 0 {
		return NewReportError(ErrEmptyFile, apiErrors.ErrInvalidRequest, "El archivo está vacío")
	}
	if s.uploadCfg.MaxBytes > 0 && int64(len(input.Content)) > s.uploadCfg.MaxBytes {
		return NewReportError(ErrFileTooLarge, apiErrors.ErrFileTooLarge,
			fmt.Sprintf("El archivo excede el tamaño máximo de %d MB", s.uploadCfg.MaxBytes>>20))
	}
	return nil
}

// reuse devolve o resultado de um arquivo já enviado, reprocessando quando a última tentativa não terminou bem
func (s *Service) reuse(ctx context.Context, file *domain.SourceFile) (*UploadResult, error) {
	switch file.Status {
	case domain.StatusProcessing:
		return &UploadResult{SourceFile: file, Duplicate: true}, nil
	case domain.StatusCompleted:
		report, err := s.reports.GetBySourceFileID(ctx, file.ID)
		if err != nil {
			return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
		}
		if report != nil {
			return &UploadResult{SourceFile: file, Report: report, Duplicate: true}, nil
		}
	}

	report, err := s.Process(ctx, file.ID)
	if err != nil {
		return nil, err
	}

	file.Status = domain.StatusCompleted
	file.ErrorMessage = nil
	return &UploadResult{SourceFile: file, Report: report, Duplicate: true}, nil
}

// Process analisa o CSV armazenado, substitui o relatório anterior do arquivo e gera o PDF.
// Qualquer falha marca o arquivo com status de erro e é devolvida sem alteração.
func (s *Service) Process(ctx context.Context, sourceFileID string) (*domain.Report, error) {
	file, err := s.sourceFiles.GetByID(ctx, sourceFileID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, sourceFileID, err)
	}
	if file == nil {
		return nil, NewReportErrorWithID(ErrSourceFileNotFound, apiErrors.ErrSourceFileNotFound, sourceFileID, nil)
	}

	logger := log.ForContext(ctx).WithField("source_file_id", file.ID)

	if err := s.sourceFiles.UpdateStatus(ctx, file.ID, domain.StatusProcessing, nil); err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	report, err := s.process(ctx, file)
	if err != nil {
		message := err.Error()
		if statusErr := s.sourceFiles.UpdateStatus(ctx, file.ID, domain.StatusError, &message); statusErr != nil {
			logger.WithError(statusErr).Error("Erro ao registrar falha do processamento")
		}
		logger.WithError(err).Warn("Processamento do arquivo falhou")
		return nil, err
	}

	if err := s.sourceFiles.UpdateStatus(ctx, file.ID, domain.StatusCompleted, nil); err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	logger.WithField("report_id", report.ID).Info("Arquivo processado")
	return report, nil
}

func (s *Service) process(ctx context.Context, file *domain.SourceFile) (*domain.Report, error) {
	raw, err := s.store.Get(ctx, file.StorageKey)
	if err != nil {
		return nil, NewReportErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, file.ID, err)
	}

	analysis, err := s.pipeline.Analyze(ctx, raw)
	if err != nil {
		return nil, err
	}

	previous, err := s.reports.GetBySourceFileID(ctx, file.ID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewReportError(ErrGenerateID, apiErrors.ErrInternalServer, "No se pudo generar el identificador del informe")
	}

	report := &domain.Report{
		ID:           id,
		SourceFileID: file.ID,
		Aggregation:  analysis.Result,
		Insights:     analysis.Insights,
		DroppedRows:  analysis.Dataset.Dropped,
	}

	if err := s.reports.ReplaceForSource(ctx, report, analysis.Dataset.Records); err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	if previous != nil && previous.HasPDF() {
		s.deleteObject(ctx, *previous.PDFKey)
	}

	artifact, err := s.pipeline.Render(ctx, analysis, file.OriginalName)
	if err != nil {
		return nil, err
	}

	if err := s.storePDF(ctx, report, artifact); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *Service) Reprocess(ctx context.Context, ownerID, sourceFileID string) (*domain.Report, error) {
	file, err := s.ownedSourceFile(ctx, ownerID, sourceFileID)
	if err != nil {
		return nil, err
	}

	if file.Status == domain.StatusProcessing && time.Since(file.UpdatedAt) < ProcessingTimeout {
		return nil, NewReportErrorWithID(ErrFileProcessing, apiErrors.ErrFileProcessing, file.ID, nil)
	}

	log.ForContext(ctx).WithField("source_file_id", file.ID).Info("Reprocessando arquivo")
	return s.Process(ctx, file.ID)
}

func (s *Service) GetReport(ctx context.Context, ownerID, reportID string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, ownerID, reportID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, reportID, err)
	}
	if report == nil {
		return nil, NewReportErrorWithID(ErrReportNotFound, apiErrors.ErrReportNotFound, reportID, nil)
	}
	return report, nil
}

func (s *Service) ListReports(ctx context.Context, ownerID string) ([]domain.ReportSummary, error) {
	reports, err := s.reports.ListByOwner(ctx, ownerID, 0)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}
	return reports, nil
}

func (s *Service) ListSourceFiles(ctx context.Context, ownerID string) ([]*domain.SourceFile, error) {
	files, err := s.sourceFiles.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}
	return files, nil
}

// GeneratePDF renderiza novamente o relatório a partir dos dados persistidos e substitui o PDF anterior
func (s *Service) GeneratePDF(ctx context.Context, ownerID, reportID string) (domain.ReportArtifact, error) {
	report, err := s.GetReport(ctx, ownerID, reportID)
	if err != nil {
		return domain.ReportArtifact{}, err
	}
	return s.generatePDF(ctx, report)
}

func (s *Service) generatePDF(ctx context.Context, report *domain.Report) (domain.ReportArtifact, error) {
	file, err := s.sourceFiles.GetByID(ctx, report.SourceFileID)
	if err != nil {
		return domain.ReportArtifact{}, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, report.ID, err)
	}
	if file == nil {
		return domain.ReportArtifact{}, NewReportErrorWithID(ErrSourceFileNotFound, apiErrors.ErrSourceFileNotFound, report.SourceFileID, nil)
	}

	sample, err := s.reports.GetSample(ctx, report.ID, domain.SampleSize)
	if err != nil {
		return domain.ReportArtifact{}, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, report.ID, err)
	}

	analysis := Analysis{
		Dataset:  domain.Dataset{Records: sample},
		Result:   report.Aggregation,
		Insights: report.Insights,
	}

	artifact, err := s.pipeline.Render(ctx, analysis, file.OriginalName)
	if err != nil {
		return domain.ReportArtifact{}, err
	}

	var previousKey string
	if report.HasPDF() {
		previousKey = *report.PDFKey
	}

	if err := s.storePDF(ctx, report, artifact); err != nil {
		return domain.ReportArtifact{}, err
	}

	if previousKey != "" && previousKey != *report.PDFKey {
		s.deleteObject(ctx, previousKey)
	}

	return artifact, nil
}

// DownloadPDF retorna o PDF armazenado, gerando um novo quando ele não existe mais
func (s *Service) DownloadPDF(ctx context.Context, ownerID, reportID string) (domain.ReportArtifact, error) {
	report, err := s.GetReport(ctx, ownerID, reportID)
	if err != nil {
		return domain.ReportArtifact{}, err
	}

	if !report.HasPDF() {
		return s.generatePDF(ctx, report)
	}

	content, err := s.store.Get(ctx, *report.PDFKey)
	if errors.Is(err, storage.ErrObjectNotFound) {
		log.ForContext(ctx).WithField("report_id", report.ID).Warn("PDF não encontrado no armazenamento, gerando novamente")
		return s.generatePDF(ctx, report)
	}
	if err != nil {
		return domain.ReportArtifact{}, NewReportErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, report.ID, err)
	}

	artifact := domain.ReportArtifact{
		Filename: path.Base(*report.PDFKey),
		Content:  content,
	}
	if report.PDFGeneratedAt != nil {
		artifact.GeneratedAt = *report.PDFGeneratedAt
	}
	return artifact, nil
}

// DeleteSourceFile remove o arquivo, o relatório, os dados de vendas e os objetos armazenados
func (s *Service) DeleteSourceFile(ctx context.Context, ownerID, sourceFileID string) error {
	file, err := s.ownedSourceFile(ctx, ownerID, sourceFileID)
	if err != nil {
		return err
	}

	report, err := s.reports.GetBySourceFileID(ctx, file.ID)
	if err != nil {
		return NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	if err := s.sourceFiles.Delete(ctx, file.ID); err != nil {
		return NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, file.ID, err)
	}

	s.deleteObject(ctx, file.StorageKey)
	if report != nil && report.HasPDF() {
		s.deleteObject(ctx, *report.PDFKey)
	}

	log.ForContext(ctx).WithField("source_file_id", file.ID).Info("Arquivo removido")
	return nil
}

func (s *Service) DashboardSummary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error) {
	counts, err := s.sourceFiles.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}

	totals, err := s.reports.GetTotals(ctx, ownerID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}

	recent, err := s.reports.ListByOwner(ctx, ownerID, RecentReportsLimit)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}

	summary := &domain.DashboardSummary{
		ProcessedFiles: counts[domain.StatusCompleted],
		FailedFiles:    counts[domain.StatusError],
		TotalReports:   totals.Reports,
		TotalSales:     totals.Sales.StringFixed(2),
		TotalRecords:   totals.Records,
		RecentReports:  recent,
	}
	for _, count := range counts {
		summary.TotalFiles += count
	}

	return summary, nil
}

// PurgeStalePDFs apaga os PDFs gerados antes de olderThan e limpa a referência no relatório,
// para que o próximo download gere um novo
func (s *Service) PurgeStalePDFs(ctx context.Context, olderThan time.Time) (PurgeResult, error) {
	logger := log.ForContext(ctx)

	pdfs, err := s.reports.ListStalePDFs(ctx, olderThan)
	if err != nil {
		return PurgeResult{}, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err)
	}

	result := PurgeResult{Checked: len(pdfs)}
	for _, pdf := range pdfs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.store.Delete(ctx, pdf.Key); err != nil {
			logger.WithError(err).WithField("report_id", pdf.ReportID).Error("Erro ao remover PDF antigo")
			result.Failed++
			continue
		}

		if err := s.reports.ClearPDF(ctx, pdf.ReportID); err != nil {
			logger.WithError(err).WithField("report_id", pdf.ReportID).Error("Erro ao limpar referência do PDF")
			result.Failed++
			continue
		}

		result.Deleted++
	}

	return result, nil
}

func (s *Service) ownedSourceFile(ctx context.Context, ownerID, sourceFileID string) (*domain.SourceFile, error) {
	file, err := s.sourceFiles.GetByID(ctx, sourceFileID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, sourceFileID, err)
	}
	if file == nil || file.OwnerID != ownerID {
		return nil, NewReportErrorWithID(ErrSourceFileNotFound, apiErrors.ErrSourceFileNotFound, sourceFileID, nil)
	}
	return file, nil
}

func (s *Service) storePDF(ctx context.Context, report *domain.Report, artifact domain.ReportArtifact) error {
	key := storage.PDFKey(report.ID, artifact.Filename)
	if err := s.store.Put(ctx, key, artifact.Content, storage.ContentTypePDF); err != nil {
		return NewReportErrorWithID(ErrStorageOperation, apiErrors.ErrStorageOperation, report.ID, err)
	}

	if err := s.reports.SetPDF(ctx, report.ID, key, artifact.GeneratedAt); err != nil {
		s.deleteObject(ctx, key)
		return NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, report.ID, err)
	}

	generatedAt := artifact.GeneratedAt
	report.PDFKey = &key
	report.PDFGeneratedAt = &generatedAt
	return nil
}

// deleteObject remove um objeto sem interromper a operação principal
func (s *Service) deleteObject(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao remover objeto do armazenamento")
	}
}
