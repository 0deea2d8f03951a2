// Package engine drives the ingestion flow: it runs batches of raw
// messages through the parser and persists the accepted transactions,
// reporting what was parsed, rejected, and deduplicated.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paisatrail/paisa-trail/internal/common"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/parser"
	"github.com/paisatrail/paisa-trail/internal/service"
)

// Engine coordinates parsing and persistence.
type Engine struct {
	store service.TransactionStore
}

// New creates an ingestion engine backed by the given store.
func New(store service.TransactionStore) *Engine {
	return &Engine{store: store}
}

// IngestStats summarizes one ingestion batch. Duplicates counts messages
// that parsed successfully but whose fingerprint was already recorded,
// either earlier in the same batch or in a previous one.
type IngestStats struct {
	BatchID    string `json:"batchId"`
	Received   int    `json:"received"`
	Parsed     int    `json:"parsed"`
	Rejected   int    `json:"rejected"`
	Duplicates int    `json:"duplicates"`
	Stored     int    `json:"stored"`
}

// Ingest parses every message and stores the accepted transactions.
// Rejected messages are an expected outcome and never fail the batch.
func (e *Engine) Ingest(ctx context.Context, msgs []model.Message) (IngestStats, error) {
	stats := IngestStats{
		BatchID:  uuid.NewString(),
		Received: len(msgs),
	}
	if len(msgs) == 0 {
		return stats, common.ErrNoMessages
	}

	var accepted []model.ParsedTransaction
	for _, msg := range msgs {
		txn := parser.Parse(msg)
		if txn == nil {
			stats.Rejected++
			continue
		}
		stats.Parsed++
		accepted = append(accepted, *txn)
	}

	if len(accepted) > 0 {
		inserted, err := e.store.SaveTransactions(ctx, accepted)
		if err != nil {
			return stats, fmt.Errorf("failed to store batch %s: %w", stats.BatchID, err)
		}
		stats.Stored = inserted
		stats.Duplicates = stats.Parsed - inserted
	}

	slog.Info("Ingested message batch",
		"batch_id", stats.BatchID,
		"received", stats.Received,
		"parsed", stats.Parsed,
		"rejected", stats.Rejected,
		"duplicates", stats.Duplicates)

	return stats, nil
}

// IngestOne parses and stores a single message. The returned transaction is
// nil when the message was rejected; stored reports whether it was newly
// recorded (false means the fingerprint was already known).
func (e *Engine) IngestOne(ctx context.Context, msg model.Message) (txn *model.ParsedTransaction, stored bool, err error) {
	txn = parser.Parse(msg)
	if txn == nil {
		return nil, false, nil
	}
	txn.ID = uuid.NewString()

	inserted, err := e.store.SaveTransactions(ctx, []model.ParsedTransaction{*txn})
	if err != nil {
		return nil, false, fmt.Errorf("failed to store transaction: %w", err)
	}
	return txn, inserted == 1, nil
}
