package apperrors

import "errors"

// Input errors represent problems with the upload itself. They are reported
// to the caller verbatim with a 400 status.
var (
	// ErrMissingFile indicates that the multipart form carried no "file" field.
	ErrMissingFile = errors.New("no file uploaded")

	// ErrUnsupportedFileType indicates that the uploaded filename does not end
	// in .xlsx or .xls (case-insensitive).
	ErrUnsupportedFileType = errors.New("only .xlsx and .xls files are supported")

	// ErrFileTooLarge indicates that the upload exceeded the configured size cap.
	ErrFileTooLarge = errors.New("uploaded file is too large")

	// ErrNoHoldings indicates that the sheet had a valid header row but no row
	// survived validation (missing codes, zero quantities, and so on).
	ErrNoHoldings = errors.New("no valid holdings found in sheet")
)

// Structural errors represent a sheet the parser cannot work with at all.
// They are logged with detail server-side and surfaced to the caller only as
// a generic processing failure with a 500 status.
var (
	// ErrHeaderRowNotFound indicates that no row carried the "Particulars"
	// marker in its second column, so the holdings table could not be located.
	ErrHeaderRowNotFound = errors.New("header row with \"Particulars\" marker not found")

	// ErrWorkbookDecode indicates that the workbook bytes could not be opened
	// as a spreadsheet (corrupt file, or a legacy format the decoder rejects).
	ErrWorkbookDecode = errors.New("workbook could not be decoded")

	// ErrEmptyWorkbook indicates that the first worksheet contained no rows.
	ErrEmptyWorkbook = errors.New("first worksheet is empty")
)

// Request errors cover the JSON calculation endpoints.
var (
	// ErrEmptyHoldingSet indicates a summary/chart request without holdings.
	ErrEmptyHoldingSet = errors.New("holding set cannot be empty")

	// ErrNoChartData indicates a chart request whose sector filter matched
	// no holdings, leaving nothing to draw.
	ErrNoChartData = errors.New("no holdings to chart for the requested sector")
)
