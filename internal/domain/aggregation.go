package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DateLayout é o formato das datas serializadas (date_range_start, date_range_end)
const DateLayout = "2006-01-02"

// LabeledAmount é um par (rótulo, total) de uma quebra ordenada
type LabeledAmount struct {
	Label  string
	Amount decimal.Decimal
}

// Breakdown é uma lista ordenada de totais por rótulo.
// Serializada como {"labels": [...], "data": [...]}.
type Breakdown []LabeledAmount

// Labels retorna os rótulos na ordem da quebra
func (b Breakdown) Labels() []string {
	labels := make([]string, len(b))
	for i, entry := range b {
		labels[i] = entry.Label
	}
	return labels
}

// Head retorna as primeiras n entradas, com capacidade limitada a n
func (b Breakdown) Head(n int) Breakdown {
	if n > len(b) {
		n = len(b)
	}
	return b[:n:n]
}

type breakdownJSON struct {
	Labels []string        `json:"labels"`
	Data   []decimalNumber `json:"data"`
}

type breakdownInput struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// MarshalJSON implementa json.Marshaler
func (b Breakdown) MarshalJSON() ([]byte, error) {
	out := breakdownJSON{
		Labels: b.Labels(),
		Data:   make([]decimalNumber, len(b)),
	}
	for i, entry := range b {
		out.Data[i] = decimalNumber(entry.Amount)
	}
	return json.Marshal(out)
}

// UnmarshalJSON implementa json.Unmarshaler
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var in breakdownInput
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	result := make(Breakdown, 0, len(in.Labels))
	for i, label := range in.Labels {
		amount := decimal.Zero
		if i < len(in.Data) {
			amount = in.Data[i]
		}
		result = append(result, LabeledAmount{Label: label, Amount: amount})
	}
	*b = result
	return nil
}

// MonthlyTrend é o total de um mês e o crescimento percentual sobre o mês anterior
type MonthlyTrend struct {
	Month  string
	Sales  decimal.Decimal
	Growth decimal.Decimal
}

type monthlyTrendJSON struct {
	Month  string        `json:"month"`
	Sales  decimalNumber `json:"sales"`
	Growth decimalNumber `json:"growth"`
}

type monthlyTrendInput struct {
	Month  string          `json:"month"`
	Sales  decimal.Decimal `json:"sales"`
	Growth decimal.Decimal `json:"growth"`
}

// MarshalJSON implementa json.Marshaler. O crescimento é arredondado para 2 casas.
func (m MonthlyTrend) MarshalJSON() ([]byte, error) {
	return json.Marshal(monthlyTrendJSON{
		Month:  m.Month,
		Sales:  decimalNumber(m.Sales),
		Growth: decimalNumber(m.Growth.Round(2)),
	})
}

// UnmarshalJSON implementa json.Unmarshaler
func (m *MonthlyTrend) UnmarshalJSON(data []byte) error {
	var in monthlyTrendInput
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*m = MonthlyTrend{Month: in.Month, Sales: in.Sales, Growth: in.Growth}
	return nil
}

// DateRange é o intervalo [Start, End] das datas do conjunto analisado
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AggregationResult são as métricas calculadas sobre um Dataset
type AggregationResult struct {
	TotalSales    decimal.Decimal
	TotalRecords  int
	DateRange     DateRange
	TopProducts   Breakdown
	SalesByRegion Breakdown
	SalesByDate   Breakdown
	MonthlyTrends []MonthlyTrend
}

type aggregationJSON struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalRecords   int             `json:"total_records"`
	DateRangeStart string          `json:"date_range_start"`
	DateRangeEnd   string          `json:"date_range_end"`
	TopProducts    Breakdown       `json:"top_products"`
	SalesByRegion  Breakdown       `json:"sales_by_region"`
	SalesByDate    Breakdown       `json:"sales_by_date"`
	MonthlyTrends  []MonthlyTrend  `json:"monthly_trends"`
}

// MarshalJSON implementa json.Marshaler
func (a AggregationResult) MarshalJSON() ([]byte, error) {
	trends := a.MonthlyTrends
	if trends == nil {
		trends = []MonthlyTrend{}
	}

	return json.Marshal(aggregationJSON{
		TotalSales:     a.TotalSales,
		TotalRecords:   a.TotalRecords,
		DateRangeStart: a.DateRange.Start.Format(DateLayout),
		DateRangeEnd:   a.DateRange.End.Format(DateLayout),
		TopProducts:    a.TopProducts,
		SalesByRegion:  a.SalesByRegion,
		SalesByDate:    a.SalesByDate,
		MonthlyTrends:  trends,
	})
}

// UnmarshalJSON implementa json.Unmarshaler
func (a *AggregationResult) UnmarshalJSON(data []byte) error {
	var in aggregationJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	result := AggregationResult{
		TotalSales:    in.TotalSales,
		TotalRecords:  in.TotalRecords,
		TopProducts:   in.TopProducts,
		SalesByRegion: in.SalesByRegion,
		SalesByDate:   in.SalesByDate,
		MonthlyTrends: in.MonthlyTrends,
	}

	var err error
	if in.DateRangeStart != "" {
		if result.DateRange.Start, err = time.Parse(DateLayout, in.DateRangeStart); err != nil {
			return err
		}
	}
	if in.DateRangeEnd != "" {
		if result.DateRange.End, err = time.Parse(DateLayout, in.DateRangeEnd); err != nil {
			return err
		}
	}

	*a = result
	return nil
}

// decimalNumber serializa um decimal como número JSON sem perda de precisão
type decimalNumber decimal.Decimal

func (d decimalNumber) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(d).String()), nil
}
