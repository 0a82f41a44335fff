package model

// Holding represents one stock position parsed from an uploaded sheet.
// Numeric fields are normalized from the sheet's mixed currency-string and
// number cells; the remaining fields carry the sheet text through unchanged.
type Holding struct {
	Name             string  `json:"name"`             // Display name (sheet "Particulars" column)
	Code             string  `json:"code"`             // Exchange scrip number or ticker
	PurchasePrice    float64 `json:"purchasePrice"`    // Average buy price per share
	Quantity         int     `json:"quantity"`         // Shares held
	Investment       float64 `json:"investment"`       // Declared invested amount (not recomputed)
	PortfolioPercent string  `json:"portfolioPercent"` // Sheet text, passthrough
	SheetCMP         float64 `json:"cmp"`              // Market price as declared in the sheet (fallback)
	PresentValue     float64 `json:"presentValue"`     // Sheet-declared value, superseded after enrichment
	GainLoss         float64 `json:"gainLoss"`         // Sheet-declared gain/loss, superseded after enrichment
	GainLossPercent  string  `json:"gainLossPercent"`  // Sheet text, passthrough
	MarketCap        string  `json:"marketCap"`        // Sheet text, passthrough
	PERatio          string  `json:"peRatio"`          // Sheet text, passthrough
	Sector           string  `json:"sector"`           // Classified sector label
}

// Price status values attached to an enriched holding.
const (
	// PriceUpdated marks a holding whose live fetch returned a valid price.
	PriceUpdated = "updated"

	// PriceUnavailable marks a holding served from the sheet fallback (or 0).
	PriceUnavailable = "unavailable"
)

// EnrichedHolding is a Holding extended with the price resolved at request
// time and the metrics derived from it. Holdings whose live fetch failed keep
// priceStatus "unavailable" and may carry a currentPrice of 0.
type EnrichedHolding struct {
	Holding
	CurrentPrice           float64 `json:"currentPrice"`           // Live price, sheet cmp fallback, or 0
	PriceStatus            string  `json:"priceStatus"`            // "updated" or "unavailable"
	UpdatedPresentValue    float64 `json:"updatedPresentValue"`    // currentPrice * quantity
	UpdatedGainLoss        float64 `json:"updatedGainLoss"`        // updatedPresentValue - investment
	UpdatedGainLossPercent string  `json:"updatedGainLossPercent"` // "12.34%", or "—" when investment is 0
}

// PortfolioData is the result of one upload: every parsed holding enriched,
// plus the counts the dashboard reports. ValidStocks counts holdings whose
// final currentPrice passed validation; the full list is returned regardless.
type PortfolioData struct {
	TotalStocks int               `json:"totalStocks"`
	ValidStocks int               `json:"validStocks"`
	Holdings    []EnrichedHolding `json:"data"`
}

// ChartPoint is one bar group in the dashboard chart series.
type ChartPoint struct {
	Name         string  `json:"name"`
	Investment   float64 `json:"investment"`
	CurrentValue float64 `json:"currentValue"`
	GainLoss     float64 `json:"gainLoss"`
}

// PortfolioSummary is the sector-filtered rollup the dashboard renders.
// Sectors always lists the distinct sectors of the full holding set so the
// selector control stays stable while filtering.
type PortfolioSummary struct {
	Sector            string       `json:"sector"`            // Applied filter ("All" for no filter)
	TotalInvestment   float64      `json:"totalInvestment"`   // Sum over filtered holdings
	TotalCurrentValue float64      `json:"totalCurrentValue"` // Sum of updatedPresentValue
	TotalGainLoss     float64      `json:"totalGainLoss"`     // Sum of updatedGainLoss
	ReturnPercent     string       `json:"returnPercent"`     // "12.34%", "0%" when nothing invested
	Sectors           []string     `json:"sectors"`           // Distinct sectors of the unfiltered set
	Chart             []ChartPoint `json:"chart"`             // One point per filtered holding
}
