package model

import (
	"fmt"
	"strconv"
	"time"
)

// Fingerprint computes the deduplication key for a transaction: a 32-bit
// polynomial rolling hash over "amount-description-date-sender", rendered as
// lowercase hex with the sign normalized to non-negative. The date component
// is truncated to calendar-day granularity (UTC) so a re-delivered
// notification hashes identically regardless of time of day.
//
// This is a best-effort dedup key, not a security primitive; true uniqueness
// is enforced by the storage layer's unique index on the fingerprint.
func Fingerprint(amount float64, description string, receivedAt time.Time, sender string) string {
	seed := fmt.Sprintf("%s-%s-%s-%s",
		strconv.FormatFloat(amount, 'f', -1, 64),
		description,
		receivedAt.UTC().Format("2006-01-02"),
		sender)

	var h int32
	for _, r := range seed {
		h = (h << 5) - h + r
	}

	// Widen before negating: -math.MinInt32 overflows int32.
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}
