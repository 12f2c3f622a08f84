package rendering

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

const (
	ReportTitle = "Informe de Análisis de Ventas"

	summaryTopProducts = 5
	chartTopProducts   = 8
	productMaxLength   = 30
	categoryMaxLength  = 20

	generatedAtLayout = "02/01/2006 15:04"
	filenameLayout    = "20060102_150405"
)

// Renderer gera o PDF do relatório a partir dos resultados da análise
type Renderer interface {
	Render(result domain.AggregationResult, insights domain.InsightSet, sample []domain.SalesRecord, sourceName string) (domain.ReportArtifact, error)
}

// Option configura o Renderer
type Option func(*renderer)

// WithClock substitui o relógio usado no carimbo de geração
func WithClock(now func() time.Time) Option {
	return func(r *renderer) {
		r.now = now
	}
}

type renderer struct {
	backend Backend
	now     func() time.Time
}

// NewRenderer cria um Renderer sobre o backend informado
func NewRenderer(backend Backend, opts ...Option) Renderer {
	r := &renderer{backend: backend, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *renderer) Render(result domain.AggregationResult, insights domain.InsightSet, sample []domain.SalesRecord, sourceName string) (domain.ReportArtifact, error) {
	generatedAt := r.now()
	doc := BuildDocument(result, insights, sample, sourceName, generatedAt)

	content, err := r.backend.Render(doc)
	if err != nil {
		return domain.ReportArtifact{}, err
	}

	return domain.ReportArtifact{
		Filename:    Filename(sourceName, generatedAt),
		Content:     content,
		GeneratedAt: generatedAt,
	}, nil
}

// Filename monta o nome sugerido do PDF: informe_<arquivo>_<yyyymmdd_hhmmss>.pdf
func Filename(sourceName string, generatedAt time.Time) string {
	base := filepath.Base(strings.ReplaceAll(sourceName, `\`, "/"))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`"/:*?<>|`, r) {
			return '_'
		}
		return r
	}, base)
	if base == "" || base == "." {
		base = "ventas"
	}
	return fmt.Sprintf("informe_%s_%s.pdf", base, generatedAt.Format(filenameLayout))
}

// BuildDocument descreve o relatório completo, na ordem fixa de seções.
// Gráficos sem dados são omitidos.
func BuildDocument(result domain.AggregationResult, insights domain.InsightSet, sample []domain.SalesRecord, sourceName string, generatedAt time.Time) Document {
	builder := NewDocumentBuilder(ReportTitle).CreatedAt(generatedAt)

	builder.Add(TitleSection{
		Title: ReportTitle,
		Lines: []string{
			"Archivo: " + sourceName,
			"Fecha de generación: " + generatedAt.Format(generatedAtLayout),
			fmt.Sprintf("Período analizado: %s - %s",
				result.DateRange.Start.Format(utils.DisplayDateLayout),
				result.DateRange.End.Format(utils.DisplayDateLayout)),
		},
	})

	builder.
		Add(HeadingSection{Text: "Resumen Ejecutivo", Level: 1}).
		Add(summaryTable(result))

	hasTrend := len(result.MonthlyTrends) > 0
	hasProducts := len(result.TopProducts) > 0

	top := result.TopProducts.Head(summaryTopProducts)
	builder.
		AddIf(hasProducts, HeadingSection{Text: "Métricas Clave", Level: 1}).
		AddIf(hasProducts, HeadingSection{Text: "Top 5 Productos por Ventas", Level: 2}).
		AddIf(hasProducts, breakdownTable(top, "Producto", "Ventas", ColorPrimary, ColorWhite))

	builder.
		AddIf(hasTrend || hasProducts, HeadingSection{Text: "Análisis Visual", Level: 1}).
		AddIf(hasTrend, ChartSection{
			Chart:  LineChart,
			Title:  "Tendencia de Ventas Mensuales",
			XLabel: "Mes",
			YLabel: "Ventas (S/)",
			Series: trendSeries(result.MonthlyTrends),
			Color:  ColorPrimary,
		}).
		AddIf(hasProducts, ChartSection{
			Chart:    BarChart,
			Title:    "Top 8 Productos por Ventas",
			XLabel:   "Producto",
			YLabel:   "Ventas (S/)",
			Series:   result.TopProducts.Head(chartTopProducts),
			Color:    ColorPrimary,
			Annotate: true,
		})

	builder.
		Add(HeadingSection{Text: "Insights Automáticos", Level: 1}).
		Add(TextSection{Lines: insights, Bullet: true})

	builder.
		Add(HeadingSection{Text: "Muestra de Datos", Level: 1}).
		Add(sampleTable(sample)).
		Add(TextSection{
			Lines: []string{fmt.Sprintf("Nota: Se muestran solo los primeros %d registros como muestra.", domain.SampleSize)},
			Style: TextNote,
		})

	return builder.Build()
}

func summaryTable(result domain.AggregationResult) TableSection {
	return TableSection{
		Columns: []Column{
			{Header: "Métrica", Width: 3, Align: AlignLeft},
			{Header: "Valor", Width: 2, Align: AlignRight},
		},
		Rows: [][]string{
			{"Ventas Totales", utils.FormatMoney(result.TotalSales)},
			{"Total de Registros", strconv.Itoa(result.TotalRecords)},
			{"Productos Únicos", strconv.Itoa(len(result.TopProducts))},
			{"Regiones", strconv.Itoa(len(result.SalesByRegion))},
		},
		HeaderFill: ColorSummaryHead,
		HeaderText: ColorTitle,
	}
}

func breakdownTable(entries domain.Breakdown, labelHeader, amountHeader string, fill, text Color) TableSection {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Label, utils.FormatMoney(entry.Amount)})
	}

	return TableSection{
		Columns: []Column{
			{Header: labelHeader, Width: 3, Align: AlignLeft},
			{Header: amountHeader, Width: 2, Align: AlignRight},
		},
		Rows:       rows,
		HeaderFill: fill,
		HeaderText: text,
	}
}

func sampleTable(sample []domain.SalesRecord) TableSection {
	if len(sample) > domain.SampleSize {
		sample = sample[:domain.SampleSize]
	}

	rows := make([][]string, 0, len(sample))
	for _, record := range sample {
		rows = append(rows, []string{
			record.Date.Format(utils.DisplayDateLayout),
			truncate(record.Product, productMaxLength),
			truncate(record.Category, categoryMaxLength),
			record.Region,
			utils.FormatMoney(record.SalesAmount),
		})
	}

	return TableSection{
		Columns: []Column{
			{Header: "Fecha", Width: 1, Align: AlignCenter},
			{Header: "Producto", Width: 2.5, Align: AlignLeft},
			{Header: "Categoría", Width: 1.5, Align: AlignLeft},
			{Header: "Región", Width: 1, Align: AlignLeft},
			{Header: "Ventas", Width: 1, Align: AlignRight},
		},
		Rows:       rows,
		HeaderFill: ColorSampleHead,
		HeaderText: ColorWhite,
	}
}

func trendSeries(trends []domain.MonthlyTrend) domain.Breakdown {
	series := make(domain.Breakdown, len(trends))
	for i, trend := range trends {
		series[i] = domain.LabeledAmount{Label: trend.Month, Amount: trend.Sales}
	}
	return series
}
