package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrail/paisa-trail/internal/common"
	"github.com/paisatrail/paisa-trail/internal/model"
	"github.com/paisatrail/paisa-trail/internal/service"
)

// SaveTransactions persists parsed transactions, assigning IDs to any that
// lack one. Transactions whose fingerprint is already recorded are silently
// skipped; the return value is the number of rows actually inserted.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, txns []model.ParsedTransaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(txns); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, fingerprint, date, amount, direction, category, description, sender
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range txns {
		if txns[i].ID == "" {
			txns[i].ID = uuid.NewString()
		}

		res, err := stmt.ExecContext(ctx,
			txns[i].ID,
			txns[i].Fingerprint,
			txns[i].Date.Format(time.RFC3339),
			txns[i].Amount,
			string(txns[i].Direction),
			string(txns[i].Category),
			txns[i].Description,
			txns[i].Sender,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", txns[i].Fingerprint, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// ListTransactions returns stored transactions, newest first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, opts service.ListOptions) ([]model.ParsedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, fingerprint, date, amount, direction, category, description, sender
		FROM transactions`
	args := []any{}

	if opts.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(opts.Category))
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.ParsedTransaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// GetTransactionByFingerprint returns the stored transaction with the given
// fingerprint, or common.ErrNotFound.
func (s *SQLiteStorage) GetTransactionByFingerprint(ctx context.Context, fingerprint string) (*model.ParsedTransaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(fingerprint, "fingerprint"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, date, amount, direction, category, description, sender
		FROM transactions WHERE fingerprint = ?`, fingerprint)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrNotFound, fingerprint)
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// CountTransactions returns the number of stored transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.ParsedTransaction, error) {
	var (
		txn       model.ParsedTransaction
		dateStr   string
		direction string
		category  string
		sender    sql.NullString
	)

	err := row.Scan(&txn.ID, &txn.Fingerprint, &dateStr, &txn.Amount,
		&direction, &category, &txn.Description, &sender)
	if err != nil {
		return txn, err
	}

	date, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return txn, fmt.Errorf("failed to parse stored date %q: %w", dateStr, err)
	}

	txn.Date = date
	txn.Direction = model.Direction(direction)
	txn.Category = model.Category(category)
	txn.Sender = sender.String
	return txn, nil
}
