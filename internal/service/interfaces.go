// Package service defines the interfaces between the ingestion engine, the
// persistence layer, and the transport surfaces.
package service

import (
	"context"

	"github.com/paisatrail/paisa-trail/internal/model"
)

// ListOptions filters transaction queries.
type ListOptions struct {
	Category model.Category
	Limit    int
}

// TransactionStore persists parsed transactions and enforces at-most-once
// recording via the transaction fingerprint. SaveTransactions reports how
// many of the given transactions were actually new.
type TransactionStore interface {
	SaveTransactions(ctx context.Context, txns []model.ParsedTransaction) (inserted int, err error)
	ListTransactions(ctx context.Context, opts ListOptions) ([]model.ParsedTransaction, error)
	GetTransactionByFingerprint(ctx context.Context, fingerprint string) (*model.ParsedTransaction, error)
	CountTransactions(ctx context.Context) (int, error)
	Close() error
}
