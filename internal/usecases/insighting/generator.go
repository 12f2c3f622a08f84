package insighting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

var (
	// Limites de crescimento do último mês para cada tipo de frase
	positiveGrowthThreshold = decimal.NewFromInt(10)
	declineThreshold        = decimal.NewFromInt(-10)
)

// GenerateInsights produz as frases do relatório em ordem fixa.
// Cada regra contribui com no máximo uma frase.
func GenerateInsights(result domain.AggregationResult) domain.InsightSet {
	insights := domain.InsightSet{
		fmt.Sprintf("Las ventas totales ascienden a %s con %d registros.",
			utils.FormatMoney(result.TotalSales), result.TotalRecords),
	}

	if len(result.TopProducts) > 0 {
		top := result.TopProducts[0]
		insights = append(insights, fmt.Sprintf("El producto más vendido es '%s' con ventas de %s.",
			top.Label, utils.FormatMoney(top.Amount)))
	}

	if len(result.MonthlyTrends) >= 2 {
		insights = append(insights, growthInsight(result.MonthlyTrends[len(result.MonthlyTrends)-1]))
	}

	// Conta apenas os produtos da lista de top 10, não todos os produtos do conjunto
	if len(result.TopProducts) > 0 {
		insights = append(insights, fmt.Sprintf("El portafolio incluye %d productos diferentes en el top 10.",
			len(result.TopProducts)))
	}

	if len(result.SalesByRegion) > 1 {
		insights = append(insights, fmt.Sprintf("Las operaciones abarcan %d regiones, siendo '%s' la más exitosa.",
			len(result.SalesByRegion), result.SalesByRegion[0].Label))
	}

	return insights
}

func growthInsight(last domain.MonthlyTrend) string {
	switch {
	case last.Growth.GreaterThan(positiveGrowthThreshold):
		return fmt.Sprintf("¡Excelente crecimiento! Las ventas aumentaron %s%% en %s.",
			last.Growth.StringFixed(1), last.Month)
	case last.Growth.LessThan(declineThreshold):
		return fmt.Sprintf("Atención: Las ventas disminuyeron %s%% en %s.",
			last.Growth.Abs().StringFixed(1), last.Month)
	default:
		return fmt.Sprintf("Las ventas se mantuvieron estables en %s con un cambio de %s%%.",
			last.Month, last.Growth.StringFixed(1))
	}
}
