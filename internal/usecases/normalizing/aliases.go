package normalizing

import (
	"maps"
	"strings"

	"github.com/vfg2006/sales-report-api/internal/domain"
	"golang.org/x/text/unicode/norm"
)

// DefaultAliases mapeia grafias alternativas de cabeçalho para as colunas canônicas.
// As chaves já estão canonicalizadas (NFC, sem espaços nas bordas, minúsculas).
// Novos aliases podem ser adicionados com WithAliases.
var DefaultAliases = map[string]string{
	domain.ColumnDate:        domain.ColumnDate,
	domain.ColumnProduct:     domain.ColumnProduct,
	domain.ColumnCategory:    domain.ColumnCategory,
	domain.ColumnRegion:      domain.ColumnRegion,
	domain.ColumnSalesAmount: domain.ColumnSalesAmount,
	domain.ColumnQuantity:    domain.ColumnQuantity,

	"fecha":     domain.ColumnDate,
	"producto":  domain.ColumnProduct,
	"categoría": domain.ColumnCategory,
	"categoria": domain.ColumnCategory,
	"región":    domain.ColumnRegion,
	"ventas":    domain.ColumnSalesAmount,
	"venta":     domain.ColumnSalesAmount,
	"monto":     domain.ColumnSalesAmount,
	"cantidad":  domain.ColumnQuantity,
	"qty":       domain.ColumnQuantity,
}

var canonicalColumns = map[string]bool{
	domain.ColumnDate:        true,
	domain.ColumnProduct:     true,
	domain.ColumnCategory:    true,
	domain.ColumnRegion:      true,
	domain.ColumnSalesAmount: true,
	domain.ColumnQuantity:    true,
}

// CanonicalizeHeader normaliza um nome de coluna para busca na tabela de aliases
func CanonicalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(header)))
}

// mergeAliases devolve uma cópia de base acrescida de extra, com as chaves canonicalizadas.
// Aliases que apontam para colunas não canônicas são ignorados.
func mergeAliases(base, extra map[string]string) map[string]string {
	merged := maps.Clone(base)
	for alias, column := range extra {
		column = CanonicalizeHeader(column)
		if !canonicalColumns[column] {
			continue
		}
		merged[CanonicalizeHeader(alias)] = column
	}
	return merged
}
