package sheet

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxReasonablePrice bounds what the server accepts as a plausible share
// price, both when validating fetched quotes and when counting valid stocks.
// The browser dashboard applies its own looser display bound; the two limits
// serve different purposes and are kept separate.
const MaxReasonablePrice = 100000

var (
	// currencyTokens matches the currency markers that show up in front of
	// amounts in uploaded sheets: the rupee sign, "Rs"/"Rs." and "INR".
	currencyTokens = regexp.MustCompile(`(?i)(₹|rs\.?|inr)`)

	// nonNumeric strips everything that cannot be part of a decimal number.
	nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

	// leadingNumber extracts the first signed decimal from a filtered string.
	leadingNumber = regexp.MustCompile(`-?(\d+(\.\d+)?|\.\d+)`)
)

// ParseNumber coerces a raw cell value into a float64. Currency markers and
// thousands separators are stripped before the leading signed decimal is
// parsed. Absent cells, text without a number, and anything else that cannot
// be parsed all come back as 0; the function never fails.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	s = currencyTokens.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = nonNumeric.ReplaceAllString(s, "")

	match := leadingNumber.FindString(s)
	if match == "" {
		return 0
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// ToInt coerces a raw cell value into an integer by rounding the parsed
// number. Unparseable input comes back as 0.
func ToInt(raw string) int {
	return int(math.Round(ParseNumber(raw)))
}

// IsValidPrice reports whether p is a plausible share price: finite and
// strictly between 0 and MaxReasonablePrice.
func IsValidPrice(p float64) bool {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return false
	}
	return p > 0 && p < MaxReasonablePrice
}
