package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregation() AggregationResult {
	return AggregationResult{
		TotalSales:   decimal.RequireFromString("300.10"),
		TotalRecords: 3,
		DateRange: DateRange{
			Start: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		TopProducts: Breakdown{
			{Label: "Widget", Amount: decimal.RequireFromString("250.10")},
			{Label: "Gadget", Amount: decimal.NewFromInt(50)},
		},
		SalesByRegion: Breakdown{{Label: "Unspecified", Amount: decimal.RequireFromString("300.10")}},
		SalesByDate: Breakdown{
			{Label: "2024-01", Amount: decimal.NewFromInt(100)},
			{Label: "2024-02", Amount: decimal.RequireFromString("200.10")},
		},
		MonthlyTrends: []MonthlyTrend{
			{Month: "2024-01", Sales: decimal.NewFromInt(100), Growth: decimal.Zero},
			{Month: "2024-02", Sales: decimal.RequireFromString("200.10"), Growth: decimal.RequireFromString("100.1")},
		},
	}
}

func TestAggregationResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(sampleAggregation())
	require.NoError(t, err)

	var shape map[string]any
	require.NoError(t, json.Unmarshal(data, &shape))

	assert.Equal(t, "300.1", shape["total_sales"])
	assert.EqualValues(t, 3, shape["total_records"])
	assert.Equal(t, "2024-01-05", shape["date_range_start"])
	assert.Equal(t, "2024-02-15", shape["date_range_end"])

	top := shape["top_products"].(map[string]any)
	assert.Equal(t, []any{"Widget", "Gadget"}, top["labels"])
	assert.Equal(t, []any{250.1, float64(50)}, top["data"])

	trends := shape["monthly_trends"].([]any)
	require.Len(t, trends, 2)
	second := trends[1].(map[string]any)
	assert.Equal(t, "2024-02", second["month"])
	assert.Equal(t, 200.1, second["sales"])
	assert.Equal(t, 100.1, second["growth"])
}

func TestAggregationResult_RoundTrip(t *testing.T) {
	original := sampleAggregation()

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded AggregationResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, original.TotalSales.Equal(decoded.TotalSales))
	assert.Equal(t, original.TotalRecords, decoded.TotalRecords)
	assert.True(t, original.DateRange.Start.Equal(decoded.DateRange.Start))
	assert.True(t, original.DateRange.End.Equal(decoded.DateRange.End))
	assert.Equal(t, original.TopProducts.Labels(), decoded.TopProducts.Labels())
	for i := range original.TopProducts {
		assert.True(t, original.TopProducts[i].Amount.Equal(decoded.TopProducts[i].Amount))
	}
	require.Len(t, decoded.MonthlyTrends, 2)
	assert.True(t, decoded.MonthlyTrends[1].Growth.Equal(decimal.RequireFromString("100.1")))
}

func TestBreakdown_EmptyMarshalsAsEmptyArrays(t *testing.T) {
	data, err := json.Marshal(Breakdown(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":[],"data":[]}`, string(data))
}

func TestBreakdown_Head(t *testing.T) {
	full := Breakdown{
		{Label: "A", Amount: decimal.NewFromInt(30)},
		{Label: "B", Amount: decimal.NewFromInt(20)},
		{Label: "C", Amount: decimal.NewFromInt(10)},
	}

	head := full.Head(2)
	require.Len(t, head, 2)
	assert.Equal(t, 2, cap(head))

	extended := append(head, LabeledAmount{Label: "X", Amount: decimal.NewFromInt(99)})
	assert.Equal(t, "X", extended[2].Label)
	assert.Equal(t, "C", full[2].Label)
	assert.Len(t, full.Head(10), 3)
}

func TestMonthlyTrend_GrowthRoundedToTwoPlaces(t *testing.T) {
	trend := MonthlyTrend{Month: "2024-03", Sales: decimal.NewFromInt(10), Growth: decimal.RequireFromString("33.333333")}

	data, err := json.Marshal(trend)
	require.NoError(t, err)
	assert.JSONEq(t, `{"month":"2024-03","sales":10,"growth":33.33}`, string(data))
}

func TestDataset_Sample(t *testing.T) {
	ds := Dataset{Records: make([]SalesRecord, 15)}
	assert.Len(t, ds.Sample(SampleSize), SampleSize)

	small := Dataset{Records: make([]SalesRecord, 3)}
	assert.Len(t, small.Sample(SampleSize), 3)
}

func TestParseInsightSet(t *testing.T) {
	set := InsightSet{"uno", "dos"}
	assert.Equal(t, set, ParseInsightSet(set.String()))
	assert.Empty(t, ParseInsightSet("  "))
}
