package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountRe finds a currency-marked numeric token: Rs./Rs/INR/₹ followed by a
// number that may carry comma thousands separators and up to two decimal
// places. The first match in document order is authoritative. A bare number
// with no currency marker never matches; precision is preferred to recall.
var amountRe = regexp.MustCompile(`(?i)(?:rs\.?|inr|₹)\s*(\d[\d,]*(?:\.\d{1,2})?)`)

// intentKeywords are the directional verbs that confirm the message
// describes a real movement of money. A currency-marked amount without one
// of these is treated as non-transactional text that slipped past the
// denylist, e.g. an account statement.
var intentKeywords = []string{
	"debited", "credited", "paid", "spent", "sent", "received",
	"refund", "deposited", "reversed", "withdrawn", "purchased", "transferred",
}

// extractAmount returns the first currency-marked amount in the body, or
// false when none exists or the token parses to zero or a non-finite value.
func extractAmount(body string) (float64, bool) {
	m := amountRe.FindStringSubmatch(body)
	if m == nil {
		return 0, false
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, false
	}
	return amount, true
}

func hasFinancialIntent(lowerBody string) bool {
	for _, k := range intentKeywords {
		if strings.Contains(lowerBody, k) {
			return true
		}
	}
	return false
}
