package quote

// chartResponse maps the slice of the quote-chart API response this service
// cares about. The endpoint returns far more (timestamps, OHLCV arrays,
// exchange metadata); only the regular market price is read and everything
// else is ignored during decoding.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}
