package sheet_test

import (
	"errors"
	"testing"

	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/sheet"
	"github.com/1ShivamPandey/apnafinance/internal/testutil"
)

func TestDecodeFirstSheet(t *testing.T) {
	t.Run("returns the cell grid of the first worksheet", func(t *testing.T) {
		data := testutil.WorkbookBytes(t, [][]interface{}{
			{"Portfolio Statement"},
			{"Sr", "Particulars"},
			{1, "Infosys Ltd"},
		})

		rows, err := sheet.DecodeFirstSheet(data)

		if err != nil {
			t.Fatalf("DecodeFirstSheet() returned unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("Expected 3 rows, got %d", len(rows))
		}
		if rows[0][0] != "Portfolio Statement" {
			t.Errorf("Expected title cell, got %q", rows[0][0])
		}
		if rows[2][1] != "Infosys Ltd" {
			t.Errorf("Expected name cell, got %q", rows[2][1])
		}
	})

	t.Run("returns ErrWorkbookDecode for bytes that are not a workbook", func(t *testing.T) {
		_, err := sheet.DecodeFirstSheet([]byte("this is not a spreadsheet"))

		if !errors.Is(err, apperrors.ErrWorkbookDecode) {
			t.Errorf("Expected ErrWorkbookDecode, got %v", err)
		}
	})

	t.Run("returns ErrEmptyWorkbook when the first worksheet has no rows", func(t *testing.T) {
		data := testutil.WorkbookBytes(t, nil)

		_, err := sheet.DecodeFirstSheet(data)

		if !errors.Is(err, apperrors.ErrEmptyWorkbook) {
			t.Errorf("Expected ErrEmptyWorkbook, got %v", err)
		}
	})

	t.Run("decodes the full holdings fixture end to end", func(t *testing.T) {
		data := testutil.HoldingsWorkbook(t,
			testutil.HoldingRow(1, "Infosys Ltd", 1400, 10, 14000, "INFY", 1500),
		)

		rows, err := sheet.DecodeFirstSheet(data)
		if err != nil {
			t.Fatalf("DecodeFirstSheet() returned unexpected error: %v", err)
		}

		holdings, err := sheet.ParseHoldings(rows)
		if err != nil {
			t.Fatalf("ParseHoldings() returned unexpected error: %v", err)
		}
		if len(holdings) != 1 {
			t.Fatalf("Expected 1 holding, got %d", len(holdings))
		}
		if holdings[0].Code != "INFY" {
			t.Errorf("Expected code 'INFY', got %q", holdings[0].Code)
		}
		if holdings[0].Quantity != 10 {
			t.Errorf("Expected quantity 10, got %d", holdings[0].Quantity)
		}
	})
}
