// Package sheet turns uploaded spreadsheet bytes into validated holding
// records: workbook decoding, cell-value normalization, sector
// classification, and the row parser that ties them together.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
)

// DecodeFirstSheet opens workbook bytes and returns the cell grid of the
// first worksheet. Only the first worksheet is ever read. Bytes that are not
// a decodable workbook surface as ErrWorkbookDecode; a workbook whose first
// worksheet has no rows surfaces as ErrEmptyWorkbook.
func DecodeFirstSheet(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrWorkbookDecode, err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, apperrors.ErrEmptyWorkbook
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrWorkbookDecode, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrEmptyWorkbook
	}

	return rows, nil
}
