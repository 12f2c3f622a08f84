package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-report-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	reportsTable   = "reports r"
	reportsColumns = "r.id, r.source_file_id, r.total_sales, r.total_records, r.dropped_rows, r.date_range_start, r.date_range_end, " +
		"r.top_products, r.sales_by_region, r.sales_by_date, r.monthly_trends, r.auto_insights, r.pdf_key, r.pdf_generated_at, r.created_at, r.updated_at"

	// 9 parâmetros por linha; mantém cada INSERT bem abaixo do limite de 65535 do Postgres
	salesDataBatchSize = 1000
)

// ReportTotals são os acumulados dos relatórios de um usuário
type ReportTotals struct {
	Reports int
	Sales   decimal.Decimal
	Records int
}

type ReportRepository interface {
	ReplaceForSource(ctx context.Context, report *domain.Report, records []domain.SalesRecord) error
	GetByID(ctx context.Context, ownerID, reportID string) (*domain.Report, error)
	GetBySourceFileID(ctx context.Context, sourceFileID string) (*domain.Report, error)
	ListByOwner(ctx context.Context, ownerID string, limit uint64) ([]domain.ReportSummary, error)
	GetSample(ctx context.Context, reportID string, limit uint64) ([]domain.SalesRecord, error)
	SetPDF(ctx context.Context, reportID, key string, generatedAt time.Time) error
	ClearPDF(ctx context.Context, reportID string) error
	ListStalePDFs(ctx context.Context, olderThan time.Time) ([]domain.StoredPDF, error)
	GetTotals(ctx context.Context, ownerID string) (ReportTotals, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// ReplaceForSource apaga o relatório anterior do arquivo (e seus dados de vendas) e grava o novo
// na mesma transação. Leitores nunca veem uma mistura dos dois.
func (r *reportRepository) ReplaceForSource(ctx context.Context, report *domain.Report, records []domain.SalesRecord) error {
	payload, err := encodeAggregation(report.Aggregation)
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Delete("reports").
			Where(squirrel.Eq{"source_file_id": report.SourceFileID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover relatório anterior: %w", err)
		}

		result := report.Aggregation
		query, args, err = squirrel.
			Insert("reports").
			Columns(
				"id", "source_file_id", "total_sales", "total_records", "dropped_rows", "date_range_start", "date_range_end",
				"top_products", "sales_by_region", "sales_by_date", "monthly_trends", "auto_insights",
			).
			Values(
				report.ID,
				report.SourceFileID,
				result.TotalSales,
				result.TotalRecords,
				report.DroppedRows,
				result.DateRange.Start.Format(time.DateOnly),
				result.DateRange.End.Format(time.DateOnly),
				payload.topProducts,
				payload.salesByRegion,
				payload.salesByDate,
				payload.monthlyTrends,
				report.Insights.String(),
			).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&report.CreatedAt, &report.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir relatório: %w", err)
		}

		return insertSalesData(ctx, tx, report.ID, records)
	})
}

func insertSalesData(ctx context.Context, tx *sql.Tx, reportID string, records []domain.SalesRecord) error {
	for start := 0; start < len(records); start += salesDataBatchSize {
		end := min(start+salesDataBatchSize, len(records))

		builder := squirrel.
			Insert("sales_data").
			Columns("report_id", "position", "date", "product", "category", "region", "sales_amount", "quantity", "additional_data").
			PlaceholderFormat(squirrel.Dollar)

		for i, record := range records[start:end] {
			var extra []byte
			if len(record.Extra) > 0 {
				var err error
				extra, err = json.Marshal(record.Extra)
				if err != nil {
					return fmt.Errorf("erro ao serializar additional_data para JSON: %w", err)
				}
			}

			builder = builder.Values(
				reportID,
				start+i,
				record.Date.Format(time.DateOnly),
				record.Product,
				record.Category,
				record.Region,
				record.SalesAmount,
				record.Quantity,
				extra,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir dados de vendas: %w", err)
		}
	}

	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, ownerID, reportID string) (*domain.Report, error) {
	return r.get(ctx, squirrel.
		Select(reportsColumns).
		From(reportsTable).
		Join("source_files sf ON sf.id = r.source_file_id").
		Where(squirrel.Eq{"r.id": reportID, "sf.owner_id": ownerID}))
}

func (r *reportRepository) GetBySourceFileID(ctx context.Context, sourceFileID string) (*domain.Report, error) {
	return r.get(ctx, squirrel.
		Select(reportsColumns).
		From(reportsTable).
		Where(squirrel.Eq{"r.source_file_id": sourceFileID}))
}

func (r *reportRepository) get(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Report, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report, err := scanReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	return report, nil
}

// ListByOwner retorna os relatórios do usuário, do mais recente para o mais antigo. limit 0 retorna todos.
func (r *reportRepository) ListByOwner(ctx context.Context, ownerID string, limit uint64) ([]domain.ReportSummary, error) {
	builder := squirrel.
		Select("r.id, r.source_file_id, sf.original_name, r.total_sales, r.total_records, r.pdf_key IS NOT NULL, r.created_at").
		From(reportsTable).
		Join("source_files sf ON sf.id = r.source_file_id").
		Where(squirrel.Eq{"sf.owner_id": ownerID}).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.ReportSummary, 0)
	for rows.Next() {
		var summary domain.ReportSummary
		var totalSales decimal.Decimal
		if err := rows.Scan(
			&summary.ID,
			&summary.SourceFileID,
			&summary.FileName,
			&totalSales,
			&summary.TotalRecords,
			&summary.HasPDF,
			&summary.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatórios: %w", err)
		}
		summary.TotalSales = totalSales.StringFixed(2)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

// GetSample retorna os primeiros registros do relatório, na ordem do arquivo
func (r *reportRepository) GetSample(ctx context.Context, reportID string, limit uint64) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select("sd.date, sd.product, sd.category, sd.region, sd.sales_amount, sd.quantity, sd.additional_data").
		From("sales_data sd").
		Where(squirrel.Eq{"sd.report_id": reportID}).
		OrderBy("sd.position ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0, limit)
	for rows.Next() {
		var record domain.SalesRecord
		var extra []byte
		if err := rows.Scan(
			&record.Date,
			&record.Product,
			&record.Category,
			&record.Region,
			&record.SalesAmount,
			&record.Quantity,
			&extra,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear dados de vendas: %w", err)
		}

		if len(extra) > 0 {
			if err := json.Unmarshal(extra, &record.Extra); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de additional_data: %w", err)
			}
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *reportRepository) SetPDF(ctx context.Context, reportID, key string, generatedAt time.Time) error {
	return r.updatePDF(ctx, reportID, &key, &generatedAt)
}

func (r *reportRepository) ClearPDF(ctx context.Context, reportID string) error {
	return r.updatePDF(ctx, reportID, nil, nil)
}

func (r *reportRepository) updatePDF(ctx context.Context, reportID string, key *string, generatedAt *time.Time) error {
	query, args, err := squirrel.
		Update("reports").
		Set("pdf_key", key).
		Set("pdf_generated_at", generatedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reportID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar PDF do relatório: %w", err)
	}

	return nil
}

// ListStalePDFs retorna os PDFs gerados antes de olderThan
func (r *reportRepository) ListStalePDFs(ctx context.Context, olderThan time.Time) ([]domain.StoredPDF, error) {
	query, args, err := squirrel.
		Select("r.id, r.pdf_key, r.pdf_generated_at").
		From(reportsTable).
		Where(squirrel.NotEq{"r.pdf_key": nil}).
		Where(squirrel.Lt{"r.pdf_generated_at": olderThan}).
		OrderBy("r.pdf_generated_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	pdfs := make([]domain.StoredPDF, 0)
	for rows.Next() {
		var pdf domain.StoredPDF
		if err := rows.Scan(&pdf.ReportID, &pdf.Key, &pdf.GeneratedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear PDFs: %w", err)
		}
		pdfs = append(pdfs, pdf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return pdfs, nil
}

func (r *reportRepository) GetTotals(ctx context.Context, ownerID string) (ReportTotals, error) {
	query, args, err := squirrel.
		Select("COUNT(r.id), COALESCE(SUM(r.total_sales), 0), COALESCE(SUM(r.total_records), 0)").
		From(reportsTable).
		Join("source_files sf ON sf.id = r.source_file_id").
		Where(squirrel.Eq{"sf.owner_id": ownerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return ReportTotals{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var totals ReportTotals
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&totals.Reports, &totals.Sales, &totals.Records); err != nil {
		return ReportTotals{}, fmt.Errorf("erro ao calcular totais: %w", err)
	}

	return totals, nil
}

type aggregationPayload struct {
	topProducts   []byte
	salesByRegion []byte
	salesByDate   []byte
	monthlyTrends []byte
}

func encodeAggregation(result domain.AggregationResult) (aggregationPayload, error) {
	var payload aggregationPayload
	var err error

	if payload.topProducts, err = json.Marshal(result.TopProducts); err != nil {
		return payload, fmt.Errorf("erro ao serializar top_products para JSON: %w", err)
	}
	if payload.salesByRegion, err = json.Marshal(result.SalesByRegion); err != nil {
		return payload, fmt.Errorf("erro ao serializar sales_by_region para JSON: %w", err)
	}
	if payload.salesByDate, err = json.Marshal(result.SalesByDate); err != nil {
		return payload, fmt.Errorf("erro ao serializar sales_by_date para JSON: %w", err)
	}

	trends := result.MonthlyTrends
	if trends == nil {
		trends = []domain.MonthlyTrend{}
	}
	if payload.monthlyTrends, err = json.Marshal(trends); err != nil {
		return payload, fmt.Errorf("erro ao serializar monthly_trends para JSON: %w", err)
	}

	return payload, nil
}

func scanReport(row scanner) (*domain.Report, error) {
	report := &domain.Report{}
	result := &report.Aggregation
	var topProducts, salesByRegion, salesByDate, monthlyTrends []byte
	var insights string
	var pdfKey sql.NullString
	var pdfGeneratedAt sql.NullTime

	if err := row.Scan(
		&report.ID,
		&report.SourceFileID,
		&result.TotalSales,
		&result.TotalRecords,
		&report.DroppedRows,
		&result.DateRange.Start,
		&result.DateRange.End,
		&topProducts,
		&salesByRegion,
		&salesByDate,
		&monthlyTrends,
		&insights,
		&pdfKey,
		&pdfGeneratedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(topProducts, &result.TopProducts); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de top_products: %w", err)
	}
	if err := json.Unmarshal(salesByRegion, &result.SalesByRegion); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de sales_by_region: %w", err)
	}
	if err := json.Unmarshal(salesByDate, &result.SalesByDate); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de sales_by_date: %w", err)
	}
	if err := json.Unmarshal(monthlyTrends, &result.MonthlyTrends); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de monthly_trends: %w", err)
	}

	report.Insights = domain.ParseInsightSet(insights)
	if pdfKey.Valid {
		report.PDFKey = &pdfKey.String
	}
	if pdfGeneratedAt.Valid {
		report.PDFGeneratedAt = &pdfGeneratedAt.Time
	}

	return report, nil
}
