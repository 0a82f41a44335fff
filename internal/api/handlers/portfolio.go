package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/1ShivamPandey/apnafinance/internal/api/request"
	"github.com/1ShivamPandey/apnafinance/internal/api/response"
	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/logging"
	"github.com/1ShivamPandey/apnafinance/internal/model"
	"github.com/1ShivamPandey/apnafinance/internal/service"
	"github.com/1ShivamPandey/apnafinance/internal/validation"
)

// genericProcessingError is all a caller learns about structural parse or
// decode failures. The specific cause is logged server-side only.
const genericProcessingError = "Failed to process file"

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	maxUploadBytes   int64
	logger           *logging.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService, maxUploadBytes int64, logger *logging.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		maxUploadBytes:   maxUploadBytes,
		logger:           logger,
	}
}

// UploadResponse represents the upload success response.
type UploadResponse struct {
	Success     bool                    `json:"success"`
	TotalStocks int                     `json:"totalStocks"`
	ValidStocks int                     `json:"validStocks"`
	Data        []model.EnrichedHolding `json:"data"`
}

// Upload accepts a multipart spreadsheet upload under the "file" field,
// parses it, enriches every holding with a live price, and returns the
// enriched list with its counts.
//
// Endpoint: POST /api/portfolio/upload
// Response: 200 OK with UploadResponse
// Errors: 400 for missing file, unsupported extension, oversize upload, or
// a sheet with no valid rows; 500 with a generic message for anything that
// breaks during decoding, parsing, or enrichment.
func (h *PortfolioHandler) Upload(w http.ResponseWriter, r *http.Request) {
	uploadID := uuid.New().String()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondFailure(w, http.StatusBadRequest, apperrors.ErrFileTooLarge.Error())
			return
		}
		respondFailure(w, http.StatusBadRequest, apperrors.ErrMissingFile.Error())
		return
	}
	defer file.Close()

	if err := validation.ValidateUploadFilename(header.Filename); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error().Err(err).Str("upload_id", uploadID).Str("file", header.Filename).Msg("reading upload failed")
		respondFailure(w, http.StatusInternalServerError, genericProcessingError)
		return
	}

	h.logger.Info().
		Str("upload_id", uploadID).
		Str("file", header.Filename).
		Int("bytes", len(data)).
		Msg("processing upload")

	result, err := h.portfolioService.ProcessUpload(r.Context(), header.Filename, data)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoHoldings) {
			respondFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		// Structural failures (missing header row, undecodable workbook) and
		// anything unexpected: log the cause, return the generic message.
		h.logger.Error().Err(err).Str("upload_id", uploadID).Str("file", header.Filename).Msg("upload processing failed")
		respondFailure(w, http.StatusInternalServerError, genericProcessingError)
		return
	}

	response.RespondJSON(w, http.StatusOK, UploadResponse{
		Success:     true,
		TotalStocks: result.TotalStocks,
		ValidStocks: result.ValidStocks,
		Data:        result.Holdings,
	})
}

// Summary recomputes the sector-filtered rollups for a holding set the
// client received from a previous upload.
//
// Endpoint: POST /api/portfolio/summary
// Response: 200 OK with model.PortfolioSummary
// Errors: 400 for an undecodable body or an empty holding set.
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSummaryRequest(w, r)
	if !ok {
		return
	}

	summary := service.Aggregate(req.Holdings, req.Sector)
	response.RespondJSON(w, http.StatusOK, summary)
}

// Chart renders the sector-filtered holdings as a PNG gain/loss bar chart.
//
// Endpoint: POST /api/portfolio/chart
// Response: 200 OK, image/png
// Errors: 400 for an undecodable body, an empty holding set, or a sector
// filter matching nothing; 500 if rendering fails.
func (h *PortfolioHandler) Chart(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSummaryRequest(w, r)
	if !ok {
		return
	}

	summary := service.Aggregate(req.Holdings, req.Sector)

	png, err := service.RenderGainLossChart(summary)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoChartData) {
			respondFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("sector", req.Sector).Msg("chart render failed")
		respondFailure(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Warn().Err(err).Msg("writing chart response failed")
	}
}

// decodeSummaryRequest reads and validates the shared summary/chart body.
// On failure it writes the error response and reports false.
func (h *PortfolioHandler) decodeSummaryRequest(w http.ResponseWriter, r *http.Request) (request.SummaryRequest, bool) {
	var req request.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if err := validation.ValidateSummaryRequest(req); err != nil {
		respondFailure(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	return req, true
}
