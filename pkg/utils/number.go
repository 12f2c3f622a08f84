package utils

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const (
	// CurrencyGrapheme é o símbolo do sol peruano usado em todo o relatório
	CurrencyGrapheme = "S/"
	currencyFraction = 2
)

// Formatador da parte numérica, sem símbolo e sem sinal: "1,234.50"
var amountFormatter = money.NewFormatter(currencyFraction, ".", ",", "", "1")

// FormatMoney formata um valor decimal como moeda, arredondando apenas na apresentação.
// O sinal fica depois do símbolo: "S/ -1,234.50".
func FormatMoney(amount decimal.Decimal) string {
	rounded := amount.Round(currencyFraction)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	return CurrencyGrapheme + " " + sign + formatAbsolute(rounded.Abs())
}

func formatAbsolute(amount decimal.Decimal) string {
	if minor := amount.Shift(currencyFraction).BigInt(); minor.IsInt64() {
		return amountFormatter.Format(minor.Int64())
	}

	// Fora do alcance de int64: agrupa os dígitos da representação exata
	integer, fraction, _ := strings.Cut(amount.StringFixed(currencyFraction), ".")
	for i := len(integer) - 3; i > 0; i -= 3 {
		integer = integer[:i] + "," + integer[i:]
	}
	return integer + "." + fraction
}

// FormatCurrency aceita qualquer representação de valor monetário.
// Valores nulos ou não conversíveis são formatados como "S/ 0.00".
func FormatCurrency(amount any) string {
	value, ok := toDecimal(amount)
	if !ok {
		return FormatMoney(decimal.Zero)
	}
	return FormatMoney(value)
}

func toDecimal(amount any) (decimal.Decimal, bool) {
	switch v := amount.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	case decimal.NullDecimal:
		return v.Decimal, v.Valid
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		return toDecimal(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}
