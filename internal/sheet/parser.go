package sheet

import (
	"regexp"
	"strings"

	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/model"
)

// headerMarker is the literal text identifying the header row of the
// holdings table. It must appear, exactly, in the name column.
const headerMarker = "Particulars"

// Column layout of the holdings table, 0-based. Index 0 carries the sheet's
// serial number and is ignored. A data row must reach at least the
// code-source column to be considered.
const (
	colName             = 1
	colPurchasePrice    = 2
	colQuantity         = 3
	colInvestment       = 4
	colPortfolioPercent = 5
	colCodeSource       = 6
	colCMP              = 7
	colPresentValue     = 8
	colGainLoss         = 9
	colGainLossPercent  = 10
	colMarketCap        = 11
	colPERatio          = 12

	minColumns = colCodeSource + 1
)

var (
	// numericCode matches a 4-6 digit exchange scrip number.
	numericCode = regexp.MustCompile(`\b\d{4,6}\b`)

	// tickerCode matches an uppercase ticker of at least three characters,
	// dots allowed ("RELIANCE", "NIFTYBEES", "M.M").
	tickerCode = regexp.MustCompile(`\b[A-Z][A-Z.]{2,}\b`)
)

// ParseHoldings scans a worksheet grid for the holdings table and converts
// its rows into Holding records, preserving row order. The grid is the raw
// cell text of the first worksheet; short rows stand for rows whose trailing
// cells are absent.
//
// The table starts below the first row carrying the header marker in its
// name column; if no such row exists the sheet is structurally unusable and
// ErrHeaderRowNotFound is returned. Individual rows that are blank, too
// short, missing a recognizable code, or missing a positive purchase price
// or quantity are skipped silently; per-row damage never aborts the parse.
func ParseHoldings(grid [][]string) ([]model.Holding, error) {
	headerIdx := -1
	for i, row := range grid {
		if len(row) > colName && strings.TrimSpace(row[colName]) == headerMarker {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, apperrors.ErrHeaderRowNotFound
	}

	var holdings []model.Holding
	for _, row := range grid[headerIdx+1:] {
		if len(row) < minColumns {
			continue
		}

		name := strings.TrimSpace(row[colName])
		if name == "" {
			continue
		}

		code := ExtractCode(row[colCodeSource])
		if code == "" {
			continue
		}

		purchasePrice := ParseNumber(row[colPurchasePrice])
		quantity := ToInt(row[colQuantity])
		if purchasePrice <= 0 || quantity <= 0 {
			continue
		}

		holdings = append(holdings, model.Holding{
			Name:             name,
			Code:             code,
			PurchasePrice:    purchasePrice,
			Quantity:         quantity,
			Investment:       ParseNumber(cell(row, colInvestment)),
			PortfolioPercent: strings.TrimSpace(cell(row, colPortfolioPercent)),
			SheetCMP:         ParseNumber(cell(row, colCMP)),
			PresentValue:     ParseNumber(cell(row, colPresentValue)),
			GainLoss:         ParseNumber(cell(row, colGainLoss)),
			GainLossPercent:  strings.TrimSpace(cell(row, colGainLossPercent)),
			MarketCap:        strings.TrimSpace(cell(row, colMarketCap)),
			PERatio:          strings.TrimSpace(cell(row, colPERatio)),
			Sector:           DetectSector(code, name),
		})
	}

	return holdings, nil
}

// ExtractCode pulls a stock identifier out of the code-source cell. A 4-6
// digit scrip number takes precedence; otherwise the first uppercase ticker
// token of three or more characters is used. No recognizable token means no
// code, and the caller drops the row.
func ExtractCode(raw string) string {
	if m := numericCode.FindString(raw); m != "" {
		return m
	}
	return tickerCode.FindString(raw)
}

// cell returns the raw value at index i, or "" when the row is too short to
// reach it.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
