package reporting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-report-api/internal/usecases/normalizing"
	"github.com/vfg2006/sales-report-api/internal/usecases/rendering"
	renderingmocks "github.com/vfg2006/sales-report-api/internal/usecases/rendering/mocks"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
)

const widgetCSV = "date,product,sales_amount\n" +
	"2024-01-05,Widget,100\n" +
	"2024-02-10,Widget,150\n" +
	"2024-02-15,Gadget,50\n"

func TestPipeline_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(t *testing.T, analysis reporting.Analysis, err error)
	}{
		{
			name:  "cenário completo",
			input: widgetCSV,
			validate: func(t *testing.T, analysis reporting.Analysis, err error) {
				require.NoError(t, err)
				assert.True(t, analysis.Result.TotalSales.Equal(decimal.NewFromInt(300)))
				assert.Equal(t, 3, analysis.Result.TotalRecords)
				assert.Equal(t, []string{"Widget", "Gadget"}, analysis.Result.TopProducts.Labels())
				require.Len(t, analysis.Result.MonthlyTrends, 2)
				assert.True(t, analysis.Result.MonthlyTrends[1].Growth.Equal(decimal.NewFromInt(100)))
				assert.NotEmpty(t, analysis.Insights)
				assert.Len(t, analysis.Sample(), 3)
			},
		},
		{
			name:  "coluna de vendas ausente",
			input: "fecha,producto\n2024-01-05,Widget\n",
			validate: func(t *testing.T, analysis reporting.Analysis, err error) {
				var schemaErr *normalizing.SchemaError
				require.ErrorAs(t, err, &schemaErr)
				assert.Equal(t, []string{domain.ColumnSalesAmount}, schemaErr.Missing)
			},
		},
		{
			name:  "todas as datas inválidas",
			input: "date,product,sales_amount\nontem,Widget,100\nxx,Gadget,50\n",
			validate: func(t *testing.T, analysis reporting.Analysis, err error) {
				var emptyErr *aggregating.EmptyDatasetError
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, 2, emptyErr.Dropped)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pipeline := reporting.NewPipeline(normalizing.NewNormalizer(), renderingmocks.NewMockRenderer(ctrl))

			analysis, err := pipeline.Analyze(context.Background(), []byte(tt.input))
			tt.validate(t, analysis, err)
		})
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Run("renderiza com a amostra", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := renderingmocks.NewMockRenderer(ctrl)
		pipeline := reporting.NewPipeline(normalizing.NewNormalizer(), renderer)

		renderer.EXPECT().
			Render(gomock.Any(), gomock.Any(), gomock.Any(), "ventas.csv").
			DoAndReturn(func(result domain.AggregationResult, insights domain.InsightSet, sample []domain.SalesRecord, sourceName string) (domain.ReportArtifact, error) {
				assert.Equal(t, 3, result.TotalRecords)
				assert.Len(t, sample, 3)
				assert.Equal(t, "Widget", sample[0].Product)
				return domain.ReportArtifact{Filename: "informe.pdf", Content: []byte("%PDF")}, nil
			})

		analysis, artifact, err := pipeline.Run(context.Background(), []byte(widgetCSV), "ventas.csv")
		require.NoError(t, err)
		assert.Equal(t, 3, analysis.Result.TotalRecords)
		assert.Equal(t, "informe.pdf", artifact.Filename)
	})

	t.Run("falha na renderização preserva a análise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := renderingmocks.NewMockRenderer(ctrl)
		pipeline := reporting.NewPipeline(normalizing.NewNormalizer(), renderer)

		renderErr := rendering.NewRenderError(rendering.ErrRender, "chart", errors.New("sem memória"))
		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ReportArtifact{}, renderErr)

		analysis, _, err := pipeline.Run(context.Background(), []byte(widgetCSV), "ventas.csv")
		assert.ErrorIs(t, err, rendering.ErrRender)
		assert.Equal(t, 3, analysis.Result.TotalRecords)
	})

	t.Run("mesma entrada produz o mesmo resultado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pipeline := reporting.NewPipeline(normalizing.NewNormalizer(), renderingmocks.NewMockRenderer(ctrl))

		first, err := pipeline.Analyze(context.Background(), []byte(widgetCSV))
		require.NoError(t, err)
		second, err := pipeline.Analyze(context.Background(), []byte(widgetCSV))
		require.NoError(t, err)

		firstJSON, err := first.Result.MarshalJSON()
		require.NoError(t, err)
		secondJSON, err := second.Result.MarshalJSON()
		require.NoError(t, err)
		assert.JSONEq(t, string(firstJSON), string(secondJSON))
	})
}
