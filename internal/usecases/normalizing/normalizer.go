package normalizing

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalizer converte o conteúdo bruto de um CSV de vendas em registros tipados
type Normalizer interface {
	Normalize(raw []byte) (domain.Dataset, error)
}

// Option configura o Normalizer
type Option func(*normalizer)

// WithAliases acrescenta aliases de cabeçalho à tabela padrão
func WithAliases(aliases map[string]string) Option {
	return func(n *normalizer) {
		n.aliases = mergeAliases(n.aliases, aliases)
	}
}

type normalizer struct {
	aliases map[string]string
}

// NewNormalizer cria um Normalizer usando DefaultAliases
func NewNormalizer(opts ...Option) Normalizer {
	n := &normalizer{aliases: mergeAliases(DefaultAliases, nil)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize usa a tabela de aliases padrão
func Normalize(raw []byte) (domain.Dataset, error) {
	return NewNormalizer().Normalize(raw)
}

// columnLayout é o resultado da reconciliação do cabeçalho
type columnLayout struct {
	canonical map[string]int // coluna canônica -> índice no arquivo
	extra     []extraColumn
}

type extraColumn struct {
	name  string
	index int
}

func (n *normalizer) Normalize(raw []byte) (domain.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Dataset{}, NewSchemaError(append([]string(nil), domain.RequiredColumns...))
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: %v", ErrReadCSV, err)
	}

	layout := n.resolveHeader(header)
	if missing := layout.missing(); len(missing) > 0 {
		return domain.Dataset{}, NewSchemaError(missing)
	}

	dataset := domain.Dataset{Records: []domain.SalesRecord{}}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			dataset.Dropped++
			dataset.Failures = append(dataset.Failures, domain.RowParseFailure{
				Line:   parseErr.Line,
				Reason: fmt.Sprintf("%s: %v", ReasonMalformedRow, parseErr.Err),
			})
			continue
		}
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: %v", ErrReadCSV, err)
		}

		line, _ := reader.FieldPos(0)
		record, failure := layout.parseRow(row, line)
		if failure != nil {
			dataset.Dropped++
			dataset.Failures = append(dataset.Failures, *failure)
			continue
		}

		dataset.Records = append(dataset.Records, record)
	}

	return dataset, nil
}

// resolveHeader aplica os aliases ao cabeçalho. Quando dois cabeçalhos apontam para a mesma
// coluna canônica, vale o primeiro e os demais ficam nas colunas extras.
func (n *normalizer) resolveHeader(header []string) columnLayout {
	layout := columnLayout{canonical: make(map[string]int)}
	usedExtra := make(map[string]int)

	for i, rawName := range header {
		name := CanonicalizeHeader(rawName)

		if column, ok := n.aliases[name]; ok {
			if _, bound := layout.canonical[column]; !bound {
				layout.canonical[column] = i
				continue
			}
		}

		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if count := usedExtra[name]; count > 0 {
			usedExtra[name] = count + 1
			name = fmt.Sprintf("%s.%d", name, count)
		} else {
			usedExtra[name] = 1
		}

		layout.extra = append(layout.extra, extraColumn{name: name, index: i})
	}

	return layout
}

func (l columnLayout) missing() []string {
	var missing []string
	for _, column := range domain.RequiredColumns {
		if _, ok := l.canonical[column]; !ok {
			missing = append(missing, column)
		}
	}
	return missing
}

func (l columnLayout) value(row []string, column string) (string, bool) {
	idx, ok := l.canonical[column]
	if !ok || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

func (l columnLayout) parseRow(row []string, line int) (domain.SalesRecord, *domain.RowParseFailure) {
	failure := func(column, value, reason string) *domain.RowParseFailure {
		return &domain.RowParseFailure{Line: line, Column: column, Value: value, Reason: reason}
	}

	rawDate, _ := l.value(row, domain.ColumnDate)
	date, err := utils.ParseFlexibleDate(rawDate)
	if err != nil {
		return domain.SalesRecord{}, failure(domain.ColumnDate, rawDate, ReasonInvalidDate)
	}

	rawProduct, _ := l.value(row, domain.ColumnProduct)
	product := strings.TrimSpace(rawProduct)
	if product == "" {
		return domain.SalesRecord{}, failure(domain.ColumnProduct, rawProduct, ReasonEmptyProduct)
	}

	rawAmount, _ := l.value(row, domain.ColumnSalesAmount)
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return domain.SalesRecord{}, failure(domain.ColumnSalesAmount, rawAmount, ReasonInvalidAmount)
	}

	record := domain.SalesRecord{
		Date:        date,
		Product:     product,
		Category:    l.textOrDefault(row, domain.ColumnCategory, domain.UncategorizedCategory),
		Region:      l.textOrDefault(row, domain.ColumnRegion, domain.UnspecifiedRegion),
		SalesAmount: amount,
		Quantity:    l.quantity(row),
	}

	if len(l.extra) > 0 {
		record.Extra = make(map[string]string, len(l.extra))
		for _, column := range l.extra {
			value := ""
			if column.index < len(row) {
				value = row[column.index]
			}
			record.Extra[column.name] = value
		}
	}

	return record, nil
}

func (l columnLayout) textOrDefault(row []string, column, fallback string) string {
	value, _ := l.value(row, column)
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

// quantity lê a quantidade como inteiro; ausente, inválida ou menor que 1 vira 1
func (l columnLayout) quantity(row []string) int {
	value, ok := l.value(row, domain.ColumnQuantity)
	if !ok {
		return 1
	}

	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 1
	}

	quantity := parsed.IntPart()
	if quantity < 1 {
		return 1
	}
	return int(quantity)
}
