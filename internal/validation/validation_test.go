package validation_test

import (
	"errors"
	"testing"

	"github.com/1ShivamPandey/apnafinance/internal/api/request"
	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/model"
	"github.com/1ShivamPandey/apnafinance/internal/testutil"
	"github.com/1ShivamPandey/apnafinance/internal/validation"
)

func TestValidateUploadFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "xlsx is accepted", filename: "portfolio.xlsx", wantErr: false},
		{name: "xls is accepted", filename: "portfolio.xls", wantErr: false},
		{name: "extension check is case-insensitive", filename: "REPORT.XLSX", wantErr: false},
		{name: "dotted names keep their final extension", filename: "backup.2024.xlsx", wantErr: false},
		{name: "pdf is rejected", filename: "portfolio.pdf", wantErr: true},
		{name: "csv is rejected", filename: "portfolio.csv", wantErr: true},
		{name: "no extension is rejected", filename: "portfolio", wantErr: true},
		{name: "empty filename is rejected", filename: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateUploadFilename(tt.filename)

			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrUnsupportedFileType) {
					t.Errorf("Expected ErrUnsupportedFileType for %q, got %v", tt.filename, err)
				}
			} else if err != nil {
				t.Errorf("Expected %q to pass, got %v", tt.filename, err)
			}
		})
	}
}

func TestValidateSummaryRequest(t *testing.T) {
	t.Run("accepts a populated holding set", func(t *testing.T) {
		req := request.SummaryRequest{
			Holdings: []model.EnrichedHolding{testutil.NewHolding().BuildEnriched(120)},
			Sector:   "All",
		}

		if err := validation.ValidateSummaryRequest(req); err != nil {
			t.Errorf("Expected valid request, got %v", err)
		}
	})

	t.Run("rejects an empty holding set", func(t *testing.T) {
		req := request.SummaryRequest{Holdings: []model.EnrichedHolding{}, Sector: "All"}

		err := validation.ValidateSummaryRequest(req)

		if !errors.Is(err, apperrors.ErrEmptyHoldingSet) {
			t.Errorf("Expected ErrEmptyHoldingSet, got %v", err)
		}
	})

	t.Run("rejects a nil holding set", func(t *testing.T) {
		err := validation.ValidateSummaryRequest(request.SummaryRequest{Sector: "IT"})

		if !errors.Is(err, apperrors.ErrEmptyHoldingSet) {
			t.Errorf("Expected ErrEmptyHoldingSet, got %v", err)
		}
	})
}
