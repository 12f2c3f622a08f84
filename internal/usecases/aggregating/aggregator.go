package aggregating

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// TopProductsLimit é a quantidade máxima de produtos em TopProducts
const TopProductsLimit = 10

var hundred = decimal.NewFromInt(100)

// Aggregate calcula as métricas de um Dataset. Somas são exatas; nenhum arredondamento
// acontece aqui.
func Aggregate(ds domain.Dataset) (domain.AggregationResult, error) {
	if ds.Len() == 0 {
		return domain.AggregationResult{}, NewEmptyDatasetError(ds.Dropped)
	}

	byProduct := newGroup()
	byRegion := newGroup()
	byMonth := newGroup()

	total := decimal.Zero
	dateRange := domain.DateRange{Start: ds.Records[0].Date, End: ds.Records[0].Date}

	for _, record := range ds.Records {
		total = total.Add(record.SalesAmount)

		if record.Date.Before(dateRange.Start) {
			dateRange.Start = record.Date
		}
		if record.Date.After(dateRange.End) {
			dateRange.End = record.Date
		}

		byProduct.add(record.Product, record.SalesAmount)
		byRegion.add(record.Region, record.SalesAmount)
		byMonth.add(utils.MonthKey(record.Date), record.SalesAmount)
	}

	salesByDate := byMonth.chronological()

	return domain.AggregationResult{
		TotalSales:    total,
		TotalRecords:  ds.Len(),
		DateRange:     dateRange,
		TopProducts:   byProduct.descending().Head(TopProductsLimit),
		SalesByRegion: byRegion.descending(),
		SalesByDate:   salesByDate,
		MonthlyTrends: MonthlyTrends(salesByDate),
	}, nil
}

// MonthlyTrends calcula o crescimento de cada mês sobre o anterior:
// (atual - anterior) / anterior * 100 quando o anterior é positivo, senão 0.
// O primeiro mês tem crescimento 0.
func MonthlyTrends(months domain.Breakdown) []domain.MonthlyTrend {
	trends := make([]domain.MonthlyTrend, 0, len(months))

	for i, month := range months {
		growth := decimal.Zero
		if i > 0 {
			previous := months[i-1].Amount
			if previous.IsPositive() {
				growth = month.Amount.Sub(previous).Div(previous).Mul(hundred)
			}
		}

		trends = append(trends, domain.MonthlyTrend{
			Month:  month.Label,
			Sales:  month.Amount,
			Growth: growth,
		})
	}

	return trends
}

// group soma valores por rótulo, lembrando a ordem em que cada rótulo apareceu
type group struct {
	index   map[string]int
	entries domain.Breakdown
}

func newGroup() *group {
	return &group{index: make(map[string]int)}
}

func (g *group) add(label string, amount decimal.Decimal) {
	if i, ok := g.index[label]; ok {
		g.entries[i].Amount = g.entries[i].Amount.Add(amount)
		return
	}
	g.index[label] = len(g.entries)
	g.entries = append(g.entries, domain.LabeledAmount{Label: label, Amount: amount})
}

// descending ordena por total decrescente; empates mantêm a ordem de aparição
func (g *group) descending() domain.Breakdown {
	sorted := append(domain.Breakdown(nil), g.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	return sorted
}

// chronological ordena pelos rótulos yyyy-mm
func (g *group) chronological() domain.Breakdown {
	sorted := append(domain.Breakdown(nil), g.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Label < sorted[j].Label
	})
	return sorted
}
