package parser

import "strings"

// noiseKeywords reject message classes that frequently carry currency-like
// numbers (credit limits, minimum dues, loan offers, OTPs) but describe no
// actual money movement. Presence of any term rejects the message before
// amount or merchant extraction is attempted. A legitimate transaction that
// happens to share one of these terms is dropped too; callers fall back to
// manual entry for those.
var noiseKeywords = []string{
	"otp", "verification", "code", "expire", "loan", "offer",
	"approve", "request", "balance", "outstanding", "due", "login",
}

func isNoise(lowerBody string) bool {
	for _, k := range noiseKeywords {
		if strings.Contains(lowerBody, k) {
			return true
		}
	}
	return false
}
