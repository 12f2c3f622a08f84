package domain

import "time"

// Report é o resultado persistido do processamento de um arquivo
type Report struct {
	ID             string            `json:"id"`
	SourceFileID   string            `json:"source_file_id"`
	Aggregation    AggregationResult `json:"aggregation"`
	Insights       InsightSet        `json:"auto_insights"`
	DroppedRows    int               `json:"dropped_rows"`
	PDFKey         *string           `json:"-"`
	PDFGeneratedAt *time.Time        `json:"pdf_generated_at"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// HasPDF indica se existe um PDF armazenado para o relatório
func (r *Report) HasPDF() bool {
	return r.PDFKey != nil && *r.PDFKey != ""
}

// ReportSummary é a versão resumida usada em listagens e no dashboard
type ReportSummary struct {
	ID           string    `json:"id"`
	SourceFileID string    `json:"source_file_id"`
	FileName     string    `json:"file_name"`
	TotalSales   string    `json:"total_sales"`
	TotalRecords int       `json:"total_records"`
	HasPDF       bool      `json:"has_pdf"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportArtifact é o PDF gerado e o nome sugerido para download
type ReportArtifact struct {
	Filename    string
	Content     []byte
	GeneratedAt time.Time
}

// StoredPDF referencia um PDF armazenado, usado pela rotina de retenção
type StoredPDF struct {
	ReportID    string
	Key         string
	GeneratedAt time.Time
}

// DashboardSummary reúne os contadores exibidos no painel do usuário
type DashboardSummary struct {
	TotalFiles     int             `json:"total_files"`
	ProcessedFiles int             `json:"processed_files"`
	FailedFiles    int             `json:"failed_files"`
	TotalReports   int             `json:"total_reports"`
	TotalSales     string          `json:"total_sales"`
	TotalRecords   int             `json:"total_records"`
	RecentReports  []ReportSummary `json:"recent_reports"`
}
