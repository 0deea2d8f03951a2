// Package model defines the core domain models used throughout the application.
package model

import "time"

// Direction indicates whether money left or entered the account.
type Direction string

// Transaction directions.
const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// ParsedTransaction is a structured transaction extracted from a single
// notification message. It is an immutable value created fresh per message;
// two parses of the same logical message produce identical Fingerprint
// values, which is what the persistence layer keys deduplication on.
type ParsedTransaction struct {
	Date        time.Time `json:"date"`
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Description string    `json:"description"`
	Sender      string    `json:"sender"`
	Direction   Direction `json:"direction"`
	Category    Category  `json:"category"`
	Amount      float64   `json:"amount"`
}
