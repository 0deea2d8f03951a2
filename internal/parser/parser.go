// Package parser implements the SMS transaction extraction pipeline: a pure,
// stateless transform from a raw bank notification to a structured
// transaction record.
//
// Three stages run in order: a noise filter over a fixed denylist, a
// currency-marked amount extraction with a directional-verb intent check,
// and classification (direction, merchant, category) plus a deterministic
// dedup fingerprint. Rejection is an expected outcome, not an error: Parse
// returns nil for any message it cannot confidently read, and the caller
// decides whether to fall back to manual entry.
package parser

import (
	"strings"
	"time"

	"github.com/paisatrail/paisa-trail/internal/model"
)

// Parse converts a notification message into a ParsedTransaction, or nil
// when the message is non-transactional or carries no currency-marked
// amount. It holds no state and performs no I/O; it is safe to call
// concurrently without synchronization. The returned transaction has no ID;
// the persistence path assigns one.
func Parse(msg model.Message) *model.ParsedTransaction {
	if len(msg.Body) > maxBodyLen {
		return nil
	}

	body := normalize(msg.Body)
	lower := strings.ToLower(body)

	if isNoise(lower) {
		return nil
	}

	amount, ok := extractAmount(body)
	if !ok {
		return nil
	}

	// An amount alone is not enough: balance statements and credit-limit
	// notices carry currency tokens too. Require a directional verb.
	if !hasFinancialIntent(lower) {
		return nil
	}

	direction := classifyDirection(lower)
	description := describeMerchant(body, msg.Sender)
	category := categorize(lower, description, direction, amount)

	y, m, d := msg.ReceivedAt.UTC().Date()

	return &model.ParsedTransaction{
		Fingerprint: model.Fingerprint(amount, description, msg.ReceivedAt, msg.Sender),
		Amount:      amount,
		Direction:   direction,
		Category:    category,
		Description: description,
		Sender:      msg.Sender,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

// creditKeywords override the debit default. They are checked
// unconditionally: if a message somehow carries both debit and credit
// language, credit wins.
var creditKeywords = []string{"credited", "received", "refund", "reversed", "deposited"}

func classifyDirection(lowerBody string) model.Direction {
	for _, k := range creditKeywords {
		if strings.Contains(lowerBody, k) {
			return model.DirectionCredit
		}
	}
	return model.DirectionDebit
}
