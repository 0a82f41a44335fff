package service

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/model"
)

const (
	chartHeight     = 400
	chartBarWidth   = 30
	chartBarSpacing = 25
	chartMinWidth   = 640
	chartMaxWidth   = 1600
	chartLabelMax   = 14
)

// RenderGainLossChart renders the summary's chart series as a PNG bar chart
// of gain/loss per holding, gains in green and losses in red, bars anchored
// at zero. Returns raw PNG bytes.
func RenderGainLossChart(summary model.PortfolioSummary) ([]byte, error) {
	if len(summary.Chart) == 0 {
		return nil, apperrors.ErrNoChartData
	}

	bars := make([]chart.Value, len(summary.Chart))
	lo, hi := 0.0, 0.0
	for i, p := range summary.Chart {
		fill := drawing.ColorFromHex("16a34a") // green-600
		if p.GainLoss < 0 {
			fill = drawing.ColorFromHex("dc2626") // red-600
		}
		bars[i] = chart.Value{
			Label: truncateLabel(p.Name),
			Value: p.GainLoss,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		}
		if p.GainLoss < lo {
			lo = p.GainLoss
		}
		if p.GainLoss > hi {
			hi = p.GainLoss
		}
	}

	// Pad the range so a flat series still renders and bars never touch the
	// frame.
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	hi += span * 0.1

	graph := chart.BarChart{
		Title:        fmt.Sprintf("Gain/Loss by Holding (%s)", summary.Sector),
		Width:        chartWidth(len(bars)),
		Height:       chartHeight,
		BarWidth:     chartBarWidth,
		BarSpacing:   chartBarSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 15, Right: 15, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// chartWidth sizes the canvas to the bar count within sane bounds.
func chartWidth(bars int) int {
	width := 160 + bars*(chartBarWidth+chartBarSpacing)
	if width < chartMinWidth {
		return chartMinWidth
	}
	if width > chartMaxWidth {
		return chartMaxWidth
	}
	return width
}

// truncateLabel keeps axis labels readable when holding names run long.
func truncateLabel(name string) string {
	if len(name) <= chartLabelMax {
		return name
	}
	return name[:chartLabelMax-3] + "..."
}
