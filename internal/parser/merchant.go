package parser

import (
	"regexp"
	"strings"
)

// maxDescriptionLen bounds the description so downstream display stays
// stable regardless of how verbose the bank format is.
const maxDescriptionLen = 30

// fallbackDescription is used when no rule matches and the sender is empty.
const fallbackDescription = "Bank Transaction"

var (
	upiMarkerRe   = regexp.MustCompile(`(?i)\b(?:vpa|upi|ref)\b`)
	upiHandleRe   = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z]+`)
	prepositionRe = regexp.MustCompile(`(?i)\b(?:at|to)\s+([a-zA-Z0-9\s&.]+?)(?:\s+(?:on|ref|txn|is)\b|$)`)
	labeledRe     = regexp.MustCompile(`(?i)\b(?:info|msg)\s+([a-zA-Z0-9\s&.]+?)(?:\s+(?:on|ref|txn|is)\b|$)`)
)

// merchantRule is one named extraction attempt against the normalized body.
// Rules are evaluated in declared order and the first to succeed wins;
// later rules are not attempted.
type merchantRule struct {
	extract func(body string) (string, bool)
	name    string
}

var merchantRules = []merchantRule{
	{name: "upi-handle", extract: extractUPIHandle},
	{name: "preposition", extract: extractAfterPreposition},
	{name: "labeled-field", extract: extractLabeledField},
}

// extractUPIHandle matches bank formats that carry a VPA/UPI/reference
// marker alongside a name@provider payment handle. The handle itself may
// sit a few words after the marker ("sent via UPI to ramesh@upi").
func extractUPIHandle(body string) (string, bool) {
	if !upiMarkerRe.MatchString(body) {
		return "", false
	}
	handle := upiHandleRe.FindString(body)
	if handle == "" {
		return "", false
	}
	return "UPI: " + handle, true
}

// extractAfterPreposition captures a merchant or payee name following
// "at"/"to", stopping at a trailing on/ref/txn/is marker or end of text.
func extractAfterPreposition(body string) (string, bool) {
	m := prepositionRe.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// extractLabeledField handles bank formats that tag the merchant explicitly
// with an Info/Msg field. The label's punctuation is already collapsed to a
// space by normalization.
func extractLabeledField(body string) (string, bool) {
	m := labeledRe.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// describeMerchant runs the extraction rules in order, falling back to the
// sender short-code and finally to a generic placeholder.
func describeMerchant(body, sender string) string {
	for _, rule := range merchantRules {
		if desc, ok := rule.extract(body); ok {
			return tidyDescription(desc)
		}
	}
	if strings.TrimSpace(sender) != "" {
		return tidyDescription(sender)
	}
	return fallbackDescription
}

// tidyDescription truncates to the display bound and strips trailing
// whitespace and punctuation. Truncation counts runes, never splitting a
// multi-byte character.
func tidyDescription(desc string) string {
	if r := []rune(desc); len(r) > maxDescriptionLen {
		desc = string(r[:maxDescriptionLen])
	}
	return strings.TrimRight(strings.TrimSpace(desc), ".,-")
}
