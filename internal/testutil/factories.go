package testutil

import (
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/1ShivamPandey/apnafinance/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	// Simple creation with defaults
//	holding := testutil.NewHolding().Build()
//
//	// Customized holding
//	holding := testutil.NewHolding().
//	    WithName("Infosys Ltd").
//	    WithCode("INFY").
//	    WithQuantity(25).
//	    Build()
type HoldingBuilder struct {
	holding model.Holding
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		holding: model.Holding{
			Name:             "Test Stock",
			Code:             "TEST",
			PurchasePrice:    100,
			Quantity:         10,
			Investment:       1000,
			PortfolioPercent: "1.0%",
			SheetCMP:         110,
			PresentValue:     1100,
			GainLoss:         100,
			GainLossPercent:  "10.0%",
			MarketCap:        "Large Cap",
			PERatio:          "24.5",
			Sector:           "Others",
		},
	}
}

// WithName sets the display name.
func (b *HoldingBuilder) WithName(name string) *HoldingBuilder {
	b.holding.Name = name
	return b
}

// WithCode sets the stock code.
func (b *HoldingBuilder) WithCode(code string) *HoldingBuilder {
	b.holding.Code = code
	return b
}

// WithPurchasePrice sets the average buy price.
func (b *HoldingBuilder) WithPurchasePrice(price float64) *HoldingBuilder {
	b.holding.PurchasePrice = price
	return b
}

// WithQuantity sets the share count.
func (b *HoldingBuilder) WithQuantity(qty int) *HoldingBuilder {
	b.holding.Quantity = qty
	return b
}

// WithInvestment sets the declared invested amount.
func (b *HoldingBuilder) WithInvestment(investment float64) *HoldingBuilder {
	b.holding.Investment = investment
	return b
}

// WithCMP sets the sheet-declared market price used as the fetch fallback.
func (b *HoldingBuilder) WithCMP(cmp float64) *HoldingBuilder {
	b.holding.SheetCMP = cmp
	return b
}

// WithSector sets the sector label directly.
func (b *HoldingBuilder) WithSector(sector string) *HoldingBuilder {
	b.holding.Sector = sector
	return b
}

// Build returns the assembled holding.
func (b *HoldingBuilder) Build() model.Holding {
	return b.holding
}

// BuildEnriched returns the holding enriched at the given price with
// "updated" status, deriving the metrics the way the enrichment engine
// does. Useful for aggregator and handler tests that need enriched input
// without running the engine.
func (b *HoldingBuilder) BuildEnriched(price float64) model.EnrichedHolding {
	h := b.holding
	presentValue := price * float64(h.Quantity)
	gainLoss := presentValue - h.Investment

	percent := "—"
	if h.Investment != 0 {
		percent = formatPercent(gainLoss / h.Investment * 100)
	}

	return model.EnrichedHolding{
		Holding:                h,
		CurrentPrice:           price,
		PriceStatus:            model.PriceUpdated,
		UpdatedPresentValue:    presentValue,
		UpdatedGainLoss:        gainLoss,
		UpdatedGainLossPercent: percent,
	}
}

// WorkbookBytes builds an in-memory .xlsx workbook whose first worksheet
// carries the given grid. Row and column order follow the slice order; nil
// cells are left absent.
func WorkbookBytes(t *testing.T, grid [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range grid {
		for j, val := range row {
			if val == nil {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name for (%d,%d): %v", j+1, i+1, err)
			}
			if err := f.SetCellValue(sheet, cellName, val); err != nil {
				t.Fatalf("set cell %s: %v", cellName, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// HoldingsGrid assembles a holdings-sheet grid: a couple of preamble rows
// the parser must skip, the header row with the "Particulars" marker, then
// the given data rows.
func HoldingsGrid(dataRows ...[]interface{}) [][]interface{} {
	grid := [][]interface{}{
		{"Portfolio Statement"},
		{},
		{"Sr", "Particulars", "Avg Price", "Qty", "Investment", "Portfolio %", "Code", "CMP", "Present Value", "Gain/Loss", "Gain/Loss %", "Market Cap", "P/E"},
	}
	return append(grid, dataRows...)
}

// HoldingRow builds one data row at the standard column layout.
func HoldingRow(serial int, name string, purchasePrice float64, qty int, investment float64, code string, cmp float64) []interface{} {
	presentValue := cmp * float64(qty)
	return []interface{}{
		serial, name, purchasePrice, qty, investment, "1.2%", code, cmp,
		presentValue, presentValue - investment, "5.0%", "Large Cap", "24.5",
	}
}

// HoldingsWorkbook is shorthand for WorkbookBytes(HoldingsGrid(rows...)).
func HoldingsWorkbook(t *testing.T, dataRows ...[]interface{}) []byte {
	t.Helper()
	return WorkbookBytes(t, HoldingsGrid(dataRows...))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
