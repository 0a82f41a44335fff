package request

import "github.com/1ShivamPandey/apnafinance/internal/model"

// SummaryRequest represents the request body for the summary and chart
// endpoints: the enriched holdings a previous upload returned, plus the
// sector filter to apply ("All" or empty selects everything).
type SummaryRequest struct {
	Holdings []model.EnrichedHolding `json:"data"`
	Sector   string                  `json:"sector"`
}
