package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// UncategorizedCategory é usado quando a linha não informa categoria
	UncategorizedCategory = "Uncategorized"
	// UnspecifiedRegion é usado quando a linha não informa região
	UnspecifiedRegion = "Unspecified"

	// SampleSize é a quantidade de registros mantida como amostra do relatório
	SampleSize = 10
)

// Colunas canônicas do conjunto de vendas
const (
	ColumnDate        = "date"
	ColumnProduct     = "product"
	ColumnCategory    = "category"
	ColumnRegion      = "region"
	ColumnSalesAmount = "sales_amount"
	ColumnQuantity    = "quantity"
)

// RequiredColumns são as colunas sem as quais nenhuma análise é possível
var RequiredColumns = []string{ColumnDate, ColumnProduct, ColumnSalesAmount}

// SalesRecord é a unidade canônica de análise, já tipada
type SalesRecord struct {
	Date        time.Time         `json:"date"`
	Product     string            `json:"product"`
	Category    string            `json:"category"`
	Region      string            `json:"region"`
	SalesAmount decimal.Decimal   `json:"sales_amount"`
	Quantity    int               `json:"quantity"`
	Extra       map[string]string `json:"additional_data,omitempty"`
}

// RowParseFailure descreve uma linha descartada durante a normalização
type RowParseFailure struct {
	Line   int    // Linha do arquivo (o cabeçalho é a linha 1)
	Column string // Coluna canônica que falhou
	Value  string // Valor original
	Reason string
}

// Dataset é o resultado da normalização de um CSV.
// Não deve ser alterado depois de criado.
type Dataset struct {
	Records  []SalesRecord
	Dropped  int
	Failures []RowParseFailure
}

// Len retorna a quantidade de registros válidos
func (d Dataset) Len() int {
	return len(d.Records)
}

// Sample retorna no máximo n registros, na ordem do arquivo
func (d Dataset) Sample(n int) []SalesRecord {
	if n > len(d.Records) {
		n = len(d.Records)
	}
	sample := make([]SalesRecord, n)
	copy(sample, d.Records[:n])
	return sample
}
