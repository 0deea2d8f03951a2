package parser

import (
	"regexp"
	"strings"
)

// maxBodyLen caps how much text the regex stages will scan. Notification
// bodies originate from arbitrary third-party senders; anything past a few
// kilobytes is not a bank alert.
const maxBodyLen = 4096

var (
	stripRe  = regexp.MustCompile(`[^\w\s.,₹@-]`)
	spacesRe = regexp.MustCompile(`\s+`)
)

// normalize collapses a raw body into the form the extraction rules run
// against: non-essential punctuation replaced with spaces, whitespace
// collapsed, ends trimmed. Case is preserved here so merchant extraction
// keeps the original casing; matching stages lowercase independently.
func normalize(body string) string {
	s := stripRe.ReplaceAllString(body, " ")
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
