package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-report-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-report-api/internal/usecases/rendering"
	"github.com/vfg2006/sales-report-api/pkg/log"
)

// Analysis é o resultado das etapas puras do pipeline, antes da renderização
type Analysis struct {
	Dataset  domain.Dataset
	Result   domain.AggregationResult
	Insights domain.InsightSet
}

// Sample retorna a amostra de registros exibida no relatório
func (a Analysis) Sample() []domain.SalesRecord {
	return a.Dataset.Sample(domain.SampleSize)
}

// Pipeline encadeia normalização, agregação, insights e renderização.
// Analyze e Render podem ser repetidos de forma independente.
type Pipeline interface {
	Analyze(ctx context.Context, raw []byte) (Analysis, error)
	Render(ctx context.Context, analysis Analysis, sourceName string) (domain.ReportArtifact, error)
	Run(ctx context.Context, raw []byte, sourceName string) (Analysis, domain.ReportArtifact, error)
}

type pipeline struct {
	normalizer normalizing.Normalizer
	renderer   rendering.Renderer
}

func NewPipeline(normalizer normalizing.Normalizer, renderer rendering.Renderer) Pipeline {
	return &pipeline{
		normalizer: normalizer,
		renderer:   renderer,
	}
}

func (p *pipeline) Analyze(ctx context.Context, raw []byte) (Analysis, error) {
	logger := log.ForContext(ctx)
	start := time.Now()

	dataset, err := p.normalizer.Normalize(raw)
	if err != nil {
		logger.WithError(err).Warn("CSV rejeitado na normalização")
		return Analysis{}, err
	}

	if dataset.Dropped > 0 {
		logger.WithFields(log.Fields{
			"dropped_rows":  dataset.Dropped,
			"valid_records": dataset.Len(),
		}).Warn("Linhas descartadas na normalização")
		for _, failure := range dataset.Failures {
			logger.WithFields(log.Fields{
				"line":   failure.Line,
				"column": failure.Column,
				"reason": failure.Reason,
			}).Debug("Linha descartada")
		}
	}

	result, err := aggregating.Aggregate(dataset)
	if err != nil {
		return Analysis{}, err
	}

	analysis := Analysis{
		Dataset:  dataset,
		Result:   result,
		Insights: insighting.GenerateInsights(result),
	}

	logger.WithFields(log.Fields{
		"valid_records": result.TotalRecords,
		"duration_ms":   time.Since(start).Milliseconds(),
	}).Info("Análise concluída")

	return analysis, nil
}

func (p *pipeline) Render(ctx context.Context, analysis Analysis, sourceName string) (domain.ReportArtifact, error) {
	start := time.Now()

	artifact, err := p.renderer.Render(analysis.Result, analysis.Insights, analysis.Sample(), sourceName)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao renderizar o relatório")
		return domain.ReportArtifact{}, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"pdf_bytes":   len(artifact.Content),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("PDF gerado")

	return artifact, nil
}

func (p *pipeline) Run(ctx context.Context, raw []byte, sourceName string) (Analysis, domain.ReportArtifact, error) {
	analysis, err := p.Analyze(ctx, raw)
	if err != nil {
		return Analysis{}, domain.ReportArtifact{}, err
	}

	artifact, err := p.Render(ctx, analysis, sourceName)
	if err != nil {
		return analysis, domain.ReportArtifact{}, err
	}

	return analysis, artifact, nil
}
