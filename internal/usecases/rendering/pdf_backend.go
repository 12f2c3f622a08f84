package rendering

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMarginPt   = 72.0
	bottomMarginPt = 40.0
	fontFamily     = "Helvetica"
	tableRowHeight = 18.0
	creator        = "sales-report-api"
)

// Backend transforma um Document em bytes
type Backend interface {
	Render(doc Document) ([]byte, error)
}

// PDFOption configura o PDFBackend
type PDFOption func(*PDFBackend)

// WithCompression liga ou desliga a compressão dos fluxos do PDF
func WithCompression(enabled bool) PDFOption {
	return func(b *PDFBackend) {
		b.compress = enabled
	}
}

// PDFBackend desenha documentos em PDF A4 com go-pdf/fpdf
type PDFBackend struct {
	painter  ChartPainter
	compress bool
}

// NewPDFBackend cria o backend de PDF
func NewPDFBackend(painter ChartPainter, opts ...PDFOption) *PDFBackend {
	b := &PDFBackend{painter: painter, compress: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// pdfWriter guarda o estado de uma renderização
type pdfWriter struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	painter ChartPainter
	width   float64 // largura útil da página
	images  int
}

func (b *PDFBackend) Render(doc Document) ([]byte, error) {
	sections := doc.Sections()
	if len(sections) == 0 {
		return nil, NewRenderError(ErrEmptyDocument, "", nil)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCompression(b.compress)
	pdf.SetMargins(pageMarginPt, pageMarginPt, pageMarginPt)
	pdf.SetAutoPageBreak(true, bottomMarginPt)
	pdf.SetTitle(doc.Title(), true)
	pdf.SetCreator(creator, false)
	if !doc.CreatedAt().IsZero() {
		pdf.SetCreationDate(doc.CreatedAt())
		pdf.SetModificationDate(doc.CreatedAt())
	}

	// cp1252 cobre os acentos e sinais do espanhol
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-28)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(ColorMuted.R, ColorMuted.G, ColorMuted.B)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	w := &pdfWriter{
		pdf:     pdf,
		tr:      tr,
		painter: b.painter,
		width:   pageWidth - 2*pageMarginPt,
	}

	for _, section := range sections {
		if err := w.write(section); err != nil {
			return nil, err
		}
		if pdf.Err() {
			return nil, NewRenderError(ErrRender, section.Kind(), pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, NewRenderError(ErrRender, "", err)
	}
	return buf.Bytes(), nil
}

func (w *pdfWriter) write(section Section) error {
	switch s := section.(type) {
	case TitleSection:
		w.title(s)
	case HeadingSection:
		w.heading(s)
	case TableSection:
		w.table(s)
	case ChartSection:
		return w.chart(s)
	case TextSection:
		w.text(s)
	case SpacerSection:
		w.pdf.Ln(s.Height)
	default:
		return NewRenderError(ErrRender, section.Kind(), fmt.Errorf("seção não suportada"))
	}
	return nil
}

func (w *pdfWriter) setTextColor(c Color) {
	w.pdf.SetTextColor(c.R, c.G, c.B)
}

func (w *pdfWriter) title(s TitleSection) {
	w.pdf.SetFont(fontFamily, "B", 24)
	w.setTextColor(ColorTitle)
	w.pdf.CellFormat(0, 30, w.tr(s.Title), "", 1, "C", false, 0, "")
	w.pdf.Ln(24)

	w.pdf.SetFont(fontFamily, "", 12)
	w.setTextColor(ColorText)
	for _, line := range s.Lines {
		w.pdf.CellFormat(0, 16, w.tr(line), "", 1, "L", false, 0, "")
	}
	w.pdf.Ln(12)
}

func (w *pdfWriter) heading(s HeadingSection) {
	size := 16.0
	if s.Level > 1 {
		size = 13
	}
	w.pdf.Ln(6)
	w.pdf.SetFont(fontFamily, "B", size)
	w.setTextColor(ColorHeading)
	w.pdf.CellFormat(0, size+4, w.tr(s.Text), "", 1, "L", false, 0, "")
	w.pdf.Ln(6)
}

func (w *pdfWriter) columnWidths(columns []Column) []float64 {
	total := 0.0
	for _, c := range columns {
		total += c.Width
	}

	widths := make([]float64, len(columns))
	for i, c := range columns {
		if total <= 0 {
			widths[i] = w.width / float64(len(columns))
			continue
		}
		widths[i] = w.width * c.Width / total
	}
	return widths
}

func (w *pdfWriter) table(s TableSection) {
	if len(s.Columns) == 0 {
		return
	}
	widths := w.columnWidths(s.Columns)

	w.pdf.SetDrawColor(ColorGrid.R, ColorGrid.G, ColorGrid.B)
	w.pdf.SetFillColor(s.HeaderFill.R, s.HeaderFill.G, s.HeaderFill.B)
	w.pdf.SetFont(fontFamily, "B", 10)
	w.setTextColor(s.HeaderText)
	for i, c := range s.Columns {
		w.pdf.CellFormat(widths[i], tableRowHeight, w.tr(c.Header), "1", 0, string(AlignCenter), true, 0, "")
	}
	w.pdf.Ln(-1)

	w.pdf.SetFont(fontFamily, "", 10)
	w.setTextColor(ColorText)
	for _, row := range s.Rows {
		for i, c := range s.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			align := c.Align
			if align == "" {
				align = AlignLeft
			}
			w.pdf.CellFormat(widths[i], tableRowHeight, w.tr(value), "1", 0, string(align), false, 0, "")
		}
		w.pdf.Ln(-1)
	}
	w.pdf.Ln(12)
}

func (w *pdfWriter) chart(s ChartSection) error {
	if len(s.Series) == 0 {
		return nil
	}

	png, err := w.painter.Paint(s)
	if err != nil {
		return err
	}

	w.images++
	name := fmt.Sprintf("chart-%d", w.images)
	options := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(png))
	if w.pdf.Err() {
		return NewRenderError(ErrChartRender, s.Title, w.pdf.Error())
	}

	height := w.width * chartHeight / chartWidth
	w.pdf.ImageOptions(name, pageMarginPt, -1, w.width, height, true, options, 0, "")
	w.pdf.Ln(12)
	return nil
}

func (w *pdfWriter) text(s TextSection) {
	size, style, color, lineHeight := 11.0, "", ColorText, 15.0
	if s.Style == TextNote {
		size, style, color, lineHeight = 9, "I", ColorMuted, 12
	}

	w.pdf.SetFont(fontFamily, style, size)
	w.setTextColor(color)
	for _, line := range s.Lines {
		if s.Bullet {
			line = "• " + line
		}
		w.pdf.MultiCell(0, lineHeight, w.tr(line), "", "L", false)
		w.pdf.Ln(4)
	}
}
