package rendering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-api/internal/domain"
)

// Color é uma cor RGB de 8 bits por canal
type Color struct {
	R, G, B int
}

// Hex converte "#rrggbb" em Color. Valores inválidos viram preto.
func Hex(value string) Color {
	value = strings.TrimPrefix(value, "#")
	if len(value) != 6 {
		return Color{}
	}
	rgb, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return Color{}
	}
	return Color{R: int(rgb >> 16 & 0xff), G: int(rgb >> 8 & 0xff), B: int(rgb & 0xff)}
}

// String retorna a cor em "#rrggbb"
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Paleta do relatório
var (
	ColorTitle       = Hex("#1f2937")
	ColorHeading     = Hex("#374151")
	ColorText        = Hex("#111827")
	ColorMuted       = Hex("#6b7280")
	ColorSummaryHead = Hex("#f3f4f6")
	ColorPrimary     = Hex("#3b82f6")
	ColorSampleHead  = Hex("#6366f1")
	ColorWhite       = Hex("#ffffff")
	ColorGrid        = Hex("#e5e7eb")
)

// Section é um bloco do documento. As seções são valores imutáveis; o Backend decide
// como cada uma é desenhada.
type Section interface {
	Kind() string
}

// TitleSection é o bloco de abertura: título centralizado e linhas de identificação
type TitleSection struct {
	Title string
	Lines []string
}

// HeadingSection é um título de seção
type HeadingSection struct {
	Text  string
	Level int // 1 para seções, 2 para subseções
}

// Align é o alinhamento horizontal de uma coluna
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Column descreve uma coluna de tabela. Width é relativa: as larguras são
// distribuídas proporcionalmente na largura útil da página.
type Column struct {
	Header string
	Width  float64
	Align  Align
}

// TableSection é uma tabela com cabeçalho colorido
type TableSection struct {
	Columns    []Column
	Rows       [][]string
	HeaderFill Color
	HeaderText Color
}

// ChartKind é o tipo de gráfico
type ChartKind string

const (
	LineChart ChartKind = "line"
	BarChart  ChartKind = "bar"
)

// ChartSection é um gráfico rasterizado pelo ChartPainter
type ChartSection struct {
	Chart    ChartKind
	Title    string
	XLabel   string
	YLabel   string
	Series   domain.Breakdown
	Color    Color
	Annotate bool // Escreve o valor formatado sobre cada barra
}

// TextStyle é o estilo de um bloco de texto
type TextStyle int

const (
	TextNormal TextStyle = iota
	TextNote
)

// TextSection é uma sequência de parágrafos
type TextSection struct {
	Lines  []string
	Style  TextStyle
	Bullet bool
}

// SpacerSection é um espaço vertical, em pontos
type SpacerSection struct {
	Height float64
}

func (TitleSection) Kind() string   { return "title" }
func (HeadingSection) Kind() string { return "heading" }
func (TableSection) Kind() string   { return "table" }
func (ChartSection) Kind() string   { return "chart" }
func (TextSection) Kind() string    { return "text" }
func (SpacerSection) Kind() string  { return "spacer" }

// Document é a descrição completa de um relatório, pronta para um Backend
type Document struct {
	title     string
	createdAt time.Time
	sections  []Section
}

// Title retorna o título do documento
func (d Document) Title() string {
	return d.title
}

// CreatedAt retorna o momento de geração registrado nos metadados
func (d Document) CreatedAt() time.Time {
	return d.createdAt
}

// Sections retorna uma cópia das seções, em ordem
func (d Document) Sections() []Section {
	return append([]Section(nil), d.sections...)
}

// DocumentBuilder monta um Document seção a seção
type DocumentBuilder struct {
	title     string
	createdAt time.Time
	sections  []Section
}

// NewDocumentBuilder cria um builder para um documento com o título informado
func NewDocumentBuilder(title string) *DocumentBuilder {
	return &DocumentBuilder{title: title}
}

// CreatedAt define o momento de geração do documento
func (b *DocumentBuilder) CreatedAt(t time.Time) *DocumentBuilder {
	b.createdAt = t
	return b
}

// Add acrescenta uma seção
func (b *DocumentBuilder) Add(section Section) *DocumentBuilder {
	b.sections = append(b.sections, section)
	return b
}

// AddIf acrescenta a seção somente quando cond é verdadeira
func (b *DocumentBuilder) AddIf(cond bool, section Section) *DocumentBuilder {
	if cond {
		return b.Add(section)
	}
	return b
}

// Build retorna o documento. O builder pode continuar sendo usado sem afetar
// documentos já construídos.
func (b *DocumentBuilder) Build() Document {
	return Document{
		title:     b.title,
		createdAt: b.createdAt,
		sections:  append([]Section(nil), b.sections...),
	}
}
