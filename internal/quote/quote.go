// Package quote fetches live market prices from the Yahoo Finance chart API.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/1ShivamPandey/apnafinance/internal/logging"
	"github.com/1ShivamPandey/apnafinance/internal/sheet"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 10 // requests per second

	// Exchange suffixes the chart API understands for Indian listings.
	suffixNSE = ".NS"
	suffixBSE = ".BO"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Source is the capability the enrichment engine needs from a quote
// provider: one best-effort price per stock code. Implementations report
// (0, false) for any code they cannot price; they never fail the caller.
type Source interface {
	FetchPrice(ctx context.Context, code string) (float64, bool)
}

// YahooClient fetches prices from the Yahoo Finance v8 chart endpoint.
// Outbound calls share a rate limiter and a bounded HTTP timeout so one
// large upload cannot hammer the upstream.
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*YahooClient)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *YahooClient) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *YahooClient) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *YahooClient) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *YahooClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewYahooClient creates a new chart API client.
// No API key is required; this is a public endpoint.
func NewYahooClient(opts ...ClientOption) *YahooClient {
	c := &YahooClient{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  logging.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchPrice resolves a live market price for a stock code. Numeric scrip
// codes are looked up on the NSE first and the BSE second; alphabetic
// tickers only on the NSE. Each attempt is one network call with no retry,
// and every failure mode (transport error, non-200 status, malformed body,
// implausible price) resolves to (0, false) rather than an error.
func (c *YahooClient) FetchPrice(ctx context.Context, code string) (float64, bool) {
	for _, suffix := range exchangeSuffixes(code) {
		if price, ok := c.fetchQuote(ctx, code+suffix); ok {
			return price, true
		}
	}
	return 0, false
}

// exchangeSuffixes returns the exchange variants to try for a code, in
// order. Purely numeric codes are BSE scrip numbers that may also trade on
// the NSE, so both are attempted; tickers are NSE-only.
func exchangeSuffixes(code string) []string {
	if isNumeric(code) {
		return []string{suffixNSE, suffixBSE}
	}
	return []string{suffixNSE}
}

// fetchQuote performs a single chart API call for one exchange-qualified
// symbol and validates the returned price.
func (c *YahooClient) fetchQuote(ctx context.Context, symbol string) (float64, bool) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, false
	}

	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, false
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Warn().Err(err).Str("symbol", symbol).Dur("elapsed", elapsed).Msg("quote request failed")
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().Str("symbol", symbol).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("quote non-OK response")
		return 0, false
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote body decode failed")
		return 0, false
	}

	if body.Chart.Error != nil || len(body.Chart.Result) == 0 {
		return 0, false
	}

	price := body.Chart.Result[0].Meta.RegularMarketPrice
	if !sheet.IsValidPrice(price) {
		return 0, false
	}

	c.logger.Debug().Str("symbol", symbol).Float64("price", price).Dur("elapsed", elapsed).Msg("quote fetched")
	return price, true
}

func isNumeric(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Ensure YahooClient implements Source
var _ Source = (*YahooClient)(nil)
