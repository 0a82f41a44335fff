package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/1ShivamPandey/apnafinance/internal/apperrors"
	"github.com/1ShivamPandey/apnafinance/internal/cache"
	"github.com/1ShivamPandey/apnafinance/internal/logging"
	"github.com/1ShivamPandey/apnafinance/internal/model"
	"github.com/1ShivamPandey/apnafinance/internal/quote"
	"github.com/1ShivamPandey/apnafinance/internal/sheet"
)

// DefaultFetchConcurrency bounds how many price fetches run at once when no
// limit is configured. Uploads can carry hundreds of holdings; fanning out
// one goroutine per holding with no cap would let a single request exhaust
// sockets and upstream quota.
const DefaultFetchConcurrency = 8

// noInvestmentPlaceholder stands in for a return percentage that cannot be
// computed because nothing was invested.
const noInvestmentPlaceholder = "—"

// PortfolioService turns an uploaded spreadsheet into enriched holdings
// ready for the dashboard. It coordinates workbook decoding, row parsing,
// concurrent price enrichment, and the result cache.
type PortfolioService struct {
	source      quote.Source
	resultCache *cache.ResultCache
	logger      *logging.Logger
	concurrency int
}

// NewPortfolioService creates a new PortfolioService. The source provides
// live prices, the cache short-circuits repeat uploads, and concurrency
// bounds the per-upload fetch pool (values below 1 fall back to the
// default).
func NewPortfolioService(source quote.Source, resultCache *cache.ResultCache, logger *logging.Logger, concurrency int) *PortfolioService {
	if concurrency < 1 {
		concurrency = DefaultFetchConcurrency
	}
	return &PortfolioService{
		source:      source,
		resultCache: resultCache,
		logger:      logger,
		concurrency: concurrency,
	}
}

// ProcessUpload runs the full pipeline for one uploaded sheet: result-cache
// lookup, workbook decode, row parse, and price enrichment. TotalStocks
// counts every parsed holding; ValidStocks counts those whose final price
// passed validation. The full enriched list is returned either way, so rows
// with unavailable prices still reach the dashboard.
func (s *PortfolioService) ProcessUpload(ctx context.Context, filename string, data []byte) (*model.PortfolioData, error) {
	key := cache.Key(data)
	if cached, ok := s.resultCache.Get(key); ok {
		s.logger.Info().Str("file", filename).Msg("serving upload from result cache")
		return cached, nil
	}

	grid, err := sheet.DecodeFirstSheet(data)
	if err != nil {
		return nil, err
	}

	holdings, err := sheet.ParseHoldings(grid)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, apperrors.ErrNoHoldings
	}

	start := time.Now()
	enriched := s.Enrich(ctx, holdings)

	valid := 0
	for _, h := range enriched {
		if sheet.IsValidPrice(h.CurrentPrice) {
			valid++
		}
	}

	result := &model.PortfolioData{
		TotalStocks: len(holdings),
		ValidStocks: valid,
		Holdings:    enriched,
	}
	s.resultCache.Put(key, result)

	s.logger.Info().
		Str("file", filename).
		Int("rows", len(grid)).
		Int("holdings", len(holdings)).
		Int("valid", valid).
		Dur("enrichment", time.Since(start)).
		Msg("upload processed")

	return result, nil
}

// Enrich resolves a price for every holding and derives the updated metrics.
// Fetches run concurrently through a bounded worker pool; results keep the
// input order and one holding's failed fetch never affects another's
// enrichment. The request context flows into every fetch, so an abandoned
// upload stops spending upstream calls.
func (s *PortfolioService) Enrich(ctx context.Context, holdings []model.Holding) []model.EnrichedHolding {
	enriched := make([]model.EnrichedHolding, len(holdings))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)
	for i, h := range holdings {
		i, h := i, h
		g.Go(func() error {
			enriched[i] = s.enrichOne(ctx, h)
			return nil
		})
	}
	// Workers never return errors; Wait only blocks until all slots are filled.
	_ = g.Wait()

	return enriched
}

// enrichOne attaches the resolved price and derived metrics to one holding.
// Price resolution order: valid live quote, then the sheet's own CMP column
// if plausible, then 0. Only a live quote counts as "updated".
func (s *PortfolioService) enrichOne(ctx context.Context, h model.Holding) model.EnrichedHolding {
	live, ok := s.source.FetchPrice(ctx, h.Code)
	liveValid := ok && sheet.IsValidPrice(live)

	price := 0.0
	status := model.PriceUnavailable
	switch {
	case liveValid:
		price = live
		status = model.PriceUpdated
	case sheet.IsValidPrice(h.SheetCMP):
		price = h.SheetCMP
	}

	// The parser classifies sectors; this covers holdings built elsewhere.
	if h.Sector == "" {
		h.Sector = sheet.DetectSector(h.Code, h.Name)
	}

	presentValue := price * float64(h.Quantity)
	gainLoss := presentValue - h.Investment

	return model.EnrichedHolding{
		Holding:                h,
		CurrentPrice:           price,
		PriceStatus:            status,
		UpdatedPresentValue:    presentValue,
		UpdatedGainLoss:        gainLoss,
		UpdatedGainLossPercent: formatReturnPercent(gainLoss, h.Investment),
	}
}

// formatReturnPercent renders gain/loss as a percentage of the invested
// amount with two decimals. With nothing invested there is no meaningful
// percentage, so a dash placeholder is returned instead.
func formatReturnPercent(gainLoss, investment float64) string {
	if investment == 0 {
		return noInvestmentPlaceholder
	}
	return fmt.Sprintf("%.2f%%", gainLoss/investment*100)
}
