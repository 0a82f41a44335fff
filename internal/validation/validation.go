// Package validation checks inbound request data before it reaches the
// services. Checks that fail return sentinel errors from apperrors so the
// handlers can map them onto the right status codes.
package validation

import (
	"path/filepath"
	"strings"

	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/api/request"
)

// allowedExtensions are the spreadsheet formats the upload endpoint accepts.
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// ValidateUploadFilename checks that an uploaded file carries a supported
// spreadsheet extension. The comparison is case-insensitive, so "REPORT.XLSX"
// passes.
func ValidateUploadFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return apperrors.ErrUnsupportedFileType
	}
	return nil
}

// ValidateSummaryRequest checks a summary or chart calculation request.
func ValidateSummaryRequest(req request.SummaryRequest) error {
	if len(req.Holdings) == 0 {
		return apperrors.ErrEmptyHoldingSet
	}
	return nil
}
