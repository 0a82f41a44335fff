package service

import (
	"fmt"

	"github.com/1ShivamPandey/apnafinance/internal/model"
)

// AllSectors is the filter value that selects every holding.
const AllSectors = "All"

// Aggregate rolls the enriched holdings matching the sector filter up into
// the summary the dashboard renders: totals, overall return, the distinct
// sector list, and the per-holding chart series. Pure computation: the same
// inputs always produce the same summary, so the client can recompute on
// every filter change.
//
// The sector list always covers the full, unfiltered holding set; the
// selector control must not lose options while a filter is applied.
func Aggregate(holdings []model.EnrichedHolding, sector string) model.PortfolioSummary {
	if sector == "" {
		sector = AllSectors
	}

	summary := model.PortfolioSummary{
		Sector:  sector,
		Sectors: distinctSectors(holdings),
		Chart:   []model.ChartPoint{},
	}

	for _, h := range holdings {
		if sector != AllSectors && h.Sector != sector {
			continue
		}
		summary.TotalInvestment += h.Investment
		summary.TotalCurrentValue += h.UpdatedPresentValue
		summary.TotalGainLoss += h.UpdatedGainLoss
		summary.Chart = append(summary.Chart, model.ChartPoint{
			Name:         h.Name,
			Investment:   h.Investment,
			CurrentValue: h.UpdatedPresentValue,
			GainLoss:     h.UpdatedGainLoss,
		})
	}

	if summary.TotalInvestment == 0 {
		summary.ReturnPercent = "0%"
	} else {
		summary.ReturnPercent = fmt.Sprintf("%.2f%%", summary.TotalGainLoss/summary.TotalInvestment*100)
	}

	return summary
}

// distinctSectors returns the sectors present in the holding set, in order
// of first appearance.
func distinctSectors(holdings []model.EnrichedHolding) []string {
	seen := make(map[string]struct{}, len(holdings))
	sectors := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if _, ok := seen[h.Sector]; ok {
			continue
		}
		seen[h.Sector] = struct{}{}
		sectors = append(sectors, h.Sector)
	}
	return sectors
}
