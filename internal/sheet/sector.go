package sheet

import "strings"

// SectorOther is the label for holdings no classification rule matches.
const SectorOther = "Others"

// sectorRule classifies a holding by exact ticker match or by a keyword
// appearing in the holding name. Codes are compared uppercase, keywords
// lowercase against the lowercased name.
type sectorRule struct {
	name     string
	codes    []string
	keywords []string
}

// sectorRules is checked in order and the first match wins, so entries that
// could collide are resolved by position: "tech mahindra" must sit in IT
// ahead of Automobile's "mahindra", and the Tata group names deliberately
// appear only in their specific sectors, never as a bare "tata" keyword.
var sectorRules = []sectorRule{
	{
		name:     "IT",
		codes:    []string{"INFY", "TCS", "WIPRO", "HCLTECH", "TECHM", "LTIM", "MPHASIS", "COFORGE"},
		keywords: []string{"infosys", "tata consultancy", "wipro", "hcl tech", "tech mahindra", "ltimindtree", "mphasis", "coforge", "persistent", "software", "infotech", "technolog"},
	},
	{
		name:     "Banking",
		codes:    []string{"HDFCBANK", "ICICIBANK", "SBIN", "KOTAKBANK", "AXISBANK", "INDUSINDBK", "BANKBARODA", "PNB", "BAJFINANCE"},
		keywords: []string{"bank", "finance", "financial"},
	},
	{
		name:     "Energy",
		codes:    []string{"RELIANCE", "ONGC", "IOC", "BPCL", "HPCL", "GAIL", "NTPC", "POWERGRID", "TATAPOWER", "ADANIGREEN"},
		keywords: []string{"reliance", "oil", "gas", "petro", "power", "energy"},
	},
	{
		name:     "Pharma",
		codes:    []string{"SUNPHARMA", "DRREDDY", "CIPLA", "DIVISLAB", "LUPIN", "AUROPHARMA", "BIOCON"},
		keywords: []string{"pharma", "drug", "laborator", "healthcare", "cipla", "lupin", "biocon"},
	},
	{
		name:     "FMCG",
		codes:    []string{"HINDUNILVR", "ITC", "NESTLEIND", "BRITANNIA", "DABUR", "MARICO", "GODREJCP", "COLPAL"},
		keywords: []string{"unilever", "nestle", "britannia", "dabur", "marico", "colgate", "consumer", "foods", "beverages"},
	},
	{
		name:     "Metals",
		codes:    []string{"TATASTEEL", "JSWSTEEL", "HINDALCO", "VEDL", "SAIL", "NMDC", "JINDALSTEL"},
		keywords: []string{"steel", "metal", "hindalco", "vedanta", "zinc", "aluminium", "mining"},
	},
	{
		name:     "Automobile",
		codes:    []string{"MARUTI", "TATAMOTORS", "M&M", "BAJAJ-AUTO", "HEROMOTOCO", "EICHERMOT", "TVSMOTOR", "ASHOKLEY"},
		keywords: []string{"motor", "maruti", "mahindra", "hero moto", "eicher", "auto"},
	},
	{
		name:     "Infrastructure",
		codes:    []string{"LT", "ADANIPORTS", "ULTRACEMCO", "GRASIM", "ACC", "AMBUJACEM", "DLF"},
		keywords: []string{"larsen", "toubro", "cement", "construction", "infra", "ports", "realty"},
	},
}

// DetectSector classifies a holding into one of the known sector labels from
// its stock code and display name. The match is case-insensitive and purely
// lexical; anything no rule recognizes lands in "Others".
func DetectSector(code, name string) string {
	upperCode := strings.ToUpper(strings.TrimSpace(code))
	lowerName := strings.ToLower(name)

	for _, rule := range sectorRules {
		for _, c := range rule.codes {
			if upperCode == c {
				return rule.name
			}
		}
		for _, kw := range rule.keywords {
			if strings.Contains(lowerName, kw) {
				return rule.name
			}
		}
	}
	return SectorOther
}
