package insighting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestGenerateInsights(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.AggregationResult
		expected domain.InsightSet
	}{
		{
			name: "apenas total",
			result: domain.AggregationResult{
				TotalSales:   amount("0"),
				TotalRecords: 1,
			},
			expected: domain.InsightSet{
				"Las ventas totales ascienden a S/ 0.00 con 1 registros.",
			},
		},
		{
			name: "crescimento positivo",
			result: domain.AggregationResult{
				TotalSales:   amount("300"),
				TotalRecords: 3,
				TopProducts: domain.Breakdown{
					{Label: "Widget", Amount: amount("250")},
					{Label: "Gadget", Amount: amount("50")},
				},
				SalesByRegion: domain.Breakdown{{Label: "Unspecified", Amount: amount("300")}},
				MonthlyTrends: []domain.MonthlyTrend{
					{Month: "2024-01", Sales: amount("100"), Growth: decimal.Zero},
					{Month: "2024-02", Sales: amount("200"), Growth: amount("100")},
				},
			},
			expected: domain.InsightSet{
				"Las ventas totales ascienden a S/ 300.00 con 3 registros.",
				"El producto más vendido es 'Widget' con ventas de S/ 250.00.",
				"¡Excelente crecimiento! Las ventas aumentaron 100.0% en 2024-02.",
				"El portafolio incluye 2 productos diferentes en el top 10.",
			},
		},
		{
			name: "queda e várias regiões",
			result: domain.AggregationResult{
				TotalSales:   amount("12345.678"),
				TotalRecords: 40,
				TopProducts:  domain.Breakdown{{Label: "Laptop", Amount: amount("9000")}},
				SalesByRegion: domain.Breakdown{
					{Label: "Lima", Amount: amount("10000")},
					{Label: "Arequipa", Amount: amount("2000")},
					{Label: "Cusco", Amount: amount("345.678")},
				},
				MonthlyTrends: []domain.MonthlyTrend{
					{Month: "2024-05", Sales: amount("8000"), Growth: decimal.Zero},
					{Month: "2024-06", Sales: amount("4345.678"), Growth: amount("-45.679025")},
				},
			},
			expected: domain.InsightSet{
				"Las ventas totales ascienden a S/ 12,345.68 con 40 registros.",
				"El producto más vendido es 'Laptop' con ventas de S/ 9,000.00.",
				"Atención: Las ventas disminuyeron 45.7% en 2024-06.",
				"El portafolio incluye 1 productos diferentes en el top 10.",
				"Las operaciones abarcan 3 regiones, siendo 'Lima' la más exitosa.",
			},
		},
		{
			name: "estável no limite",
			result: domain.AggregationResult{
				TotalSales:   amount("10"),
				TotalRecords: 2,
				MonthlyTrends: []domain.MonthlyTrend{
					{Month: "2024-01", Sales: amount("5"), Growth: decimal.Zero},
					{Month: "2024-02", Sales: amount("5.5"), Growth: amount("10")},
				},
			},
			expected: domain.InsightSet{
				"Las ventas totales ascienden a S/ 10.00 con 2 registros.",
				"Las ventas se mantuvieron estables en 2024-02 con un cambio de 10.0%.",
			},
		},
		{
			name: "estável com variação negativa pequena",
			result: domain.AggregationResult{
				TotalSales:   amount("10"),
				TotalRecords: 2,
				MonthlyTrends: []domain.MonthlyTrend{
					{Month: "2024-01", Sales: amount("5"), Growth: decimal.Zero},
					{Month: "2024-02", Sales: amount("4.75"), Growth: amount("-5")},
				},
			},
			expected: domain.InsightSet{
				"Las ventas totales ascienden a S/ 10.00 con 2 registros.",
				"Las ventas se mantuvieron estables en 2024-02 con un cambio de -5.0%.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateInsights(tt.result))
		})
	}
}
