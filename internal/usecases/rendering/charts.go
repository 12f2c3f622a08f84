package rendering

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-api/pkg/utils"
	"golang.org/x/image/font/basicfont"
)

const (
	chartWidth  = 640
	chartHeight = 384

	plotLeft   = 80.0
	plotRight  = 24.0
	plotTop    = 40.0
	plotBottom = 64.0

	yTicks         = 5
	maxXLabels     = 12
	barLabelLength = 12
)

// ChartPainter rasteriza gráficos em PNG
type ChartPainter interface {
	Paint(chart ChartSection) ([]byte, error)
}

type chartPainter struct{}

// NewChartPainter cria o ChartPainter padrão, baseado em gg
func NewChartPainter() ChartPainter {
	return &chartPainter{}
}

func (p *chartPainter) Paint(chart ChartSection) ([]byte, error) {
	if len(chart.Series) == 0 {
		return nil, NewRenderError(ErrChartRender, chart.Title, fmt.Errorf("série vazia"))
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	values := make([]float64, len(chart.Series))
	maxValue := 0.0
	for i, entry := range chart.Series {
		values[i] = entry.Amount.InexactFloat64()
		maxValue = math.Max(maxValue, values[i])
	}
	axisMax := niceCeiling(maxValue)

	plot := plotArea{
		x: plotLeft,
		y: plotTop,
		w: chartWidth - plotLeft - plotRight,
		h: chartHeight - plotTop - plotBottom,
	}

	drawFrame(dc, chart, plot, axisMax)

	switch chart.Chart {
	case LineChart:
		drawLine(dc, chart, plot, values, axisMax)
	case BarChart:
		drawBars(dc, chart, plot, values, axisMax)
	default:
		return nil, NewRenderError(ErrChartRender, chart.Title, fmt.Errorf("tipo de gráfico desconhecido: %s", chart.Chart))
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, NewRenderError(ErrChartRender, chart.Title, err)
	}
	return buf.Bytes(), nil
}

type plotArea struct {
	x, y, w, h float64
}

func (a plotArea) bottom() float64 {
	return a.y + a.h
}

func (a plotArea) scaleY(value, axisMax float64) float64 {
	return a.bottom() - value/axisMax*a.h
}

func setColor(dc *gg.Context, c Color) {
	dc.SetRGB255(c.R, c.G, c.B)
}

// drawFrame desenha título, grade horizontal, eixos e rótulos dos eixos
func drawFrame(dc *gg.Context, chart ChartSection, plot plotArea, axisMax float64) {
	setColor(dc, ColorTitle)
	dc.DrawStringAnchored(chart.Title, chartWidth/2, plotTop/2, 0.5, 0.5)

	dc.SetLineWidth(1)
	for i := 0; i <= yTicks; i++ {
		value := axisMax * float64(i) / yTicks
		y := plot.scaleY(value, axisMax)

		setColor(dc, ColorGrid)
		dc.DrawLine(plot.x, y, plot.x+plot.w, y)
		dc.Stroke()

		setColor(dc, ColorMuted)
		dc.DrawStringAnchored(axisLabel(value), plot.x-6, y, 1, 0.5)
	}

	setColor(dc, ColorHeading)
	dc.DrawLine(plot.x, plot.y, plot.x, plot.bottom())
	dc.DrawLine(plot.x, plot.bottom(), plot.x+plot.w, plot.bottom())
	dc.Stroke()

	if chart.XLabel != "" {
		dc.DrawStringAnchored(chart.XLabel, plot.x+plot.w/2, chartHeight-12, 0.5, 0.5)
	}
	if chart.YLabel != "" {
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), 14, plot.y+plot.h/2)
		dc.DrawStringAnchored(chart.YLabel, 14, plot.y+plot.h/2, 0.5, 0.5)
		dc.Pop()
	}
}

func drawLine(dc *gg.Context, chart ChartSection, plot plotArea, values []float64, axisMax float64) {
	step := plot.w
	if len(values) > 1 {
		step = plot.w / float64(len(values)-1)
	}
	pointX := func(i int) float64 {
		if len(values) == 1 {
			return plot.x + plot.w/2
		}
		return plot.x + float64(i)*step
	}

	setColor(dc, chart.Color)
	dc.SetLineWidth(2.5)
	for i, value := range values {
		if i == 0 {
			dc.MoveTo(pointX(i), plot.scaleY(value, axisMax))
			continue
		}
		dc.LineTo(pointX(i), plot.scaleY(value, axisMax))
	}
	dc.Stroke()

	for i, value := range values {
		dc.DrawCircle(pointX(i), plot.scaleY(value, axisMax), 4)
		dc.Fill()
	}

	labelEvery := int(math.Ceil(float64(len(values)) / maxXLabels))
	setColor(dc, ColorMuted)
	for i, entry := range chart.Series {
		if i%labelEvery != 0 {
			continue
		}
		dc.DrawStringAnchored(entry.Label, pointX(i), plot.bottom()+14, 0.5, 0.5)
	}
}

func drawBars(dc *gg.Context, chart ChartSection, plot plotArea, values []float64, axisMax float64) {
	slot := plot.w / float64(len(values))
	barWidth := slot * 0.6

	for i, value := range values {
		x := plot.x + float64(i)*slot + (slot-barWidth)/2
		y := plot.scaleY(value, axisMax)

		setColor(dc, chart.Color)
		dc.DrawRectangle(x, y, barWidth, plot.bottom()-y)
		dc.Fill()

		setColor(dc, ColorText)
		if chart.Annotate {
			dc.DrawStringAnchored(utils.FormatMoney(chart.Series[i].Amount), x+barWidth/2, y-8, 0.5, 0.5)
		}

		setColor(dc, ColorMuted)
		dc.DrawStringAnchored(truncate(chart.Series[i].Label, barLabelLength), x+barWidth/2, plot.bottom()+14, 0.5, 0.5)
	}
}

// niceCeiling arredonda o máximo do eixo para 1, 2, 2.5, 5 ou 10 vezes uma potência de dez
func niceCeiling(value float64) float64 {
	if value <= 0 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(value)))
	for _, factor := range []float64{1, 2, 2.5, 5, 10} {
		if candidate := factor * magnitude; candidate >= value {
			return candidate
		}
	}
	return 10 * magnitude
}

// axisLabel escreve o valor do eixo com separador de milhar e sem casas decimais
func axisLabel(value float64) string {
	formatted := utils.FormatMoney(decimal.NewFromFloat(value).Round(0))
	formatted = strings.TrimPrefix(formatted, utils.CurrencyGrapheme+" ")
	return strings.TrimSuffix(formatted, ".00")
}

// truncate mantém os primeiros limit caracteres e acrescenta "..." quando o texto é maior
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
