// Package ledger maintains the append-only transaction sequences, one
// per (user, kind) pair, persisted as whole JSON arrays in the KV store.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

type Ledger struct {
	kv store.KV
}

func New(kv store.KV) *Ledger {
	return &Ledger{kv: kv}
}

// List loads the persisted sequence in insertion order. An absent key
// is an empty ledger; a corrupt value propagates a store.DecodeError.
func (l *Ledger) List(ctx context.Context, userID int64, kind core.Kind) ([]core.Transaction, error) {
	if !kind.Valid() {
		return nil, core.ErrInvalidKind
	}
	var txs []core.Transaction
	if _, err := store.GetJSON(ctx, l.kv, store.LedgerKey(userID, kind), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Append validates the submission, constructs a transaction dated now
// and persists the extended sequence. On any validation failure nothing
// is persisted. Amounts accept both "." and "," decimal separators and
// must be positive.
func (l *Ledger) Append(ctx context.Context, userID int64, kind core.Kind, description, amount string, now time.Time) (core.Transaction, error) {
	if !kind.Valid() {
		return core.Transaction{}, core.ErrInvalidKind
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return core.Transaction{}, core.ErrEmptyDescription
	}
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.Transaction{}, err
	}

	// A corrupt stored sequence blocks the append; overwriting it here
	// would silently discard whatever data it still holds.
	txs, err := l.List(ctx, userID, kind)
	if err != nil {
		return core.Transaction{}, err
	}

	tx := core.Transaction{
		ID:          newID(now, txs),
		Date:        now,
		Description: description,
		Quantity:    1,
		UnitPrice:   core.Money{Cents: cents},
		Total:       core.Money{Cents: cents},
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	txs = append(txs, tx)
	if err := store.SetJSON(ctx, l.kv, store.LedgerKey(userID, kind), txs); err != nil {
		return core.Transaction{}, fmt.Errorf("persist ledger: %w", err)
	}

	slog.InfoContext(ctx, "Transaction appended",
		"user_id", userID,
		"kind", string(kind),
		"transaction_id", tx.ID,
		"description", tx.Description,
		"amount_cents", tx.Total.Cents)

	return tx, nil
}

// SumAll returns the sum of all transaction totals in stored order.
// An empty ledger sums to zero.
func (l *Ledger) SumAll(ctx context.Context, userID int64, kind core.Kind) (core.Money, error) {
	return l.SumSince(ctx, userID, kind, time.Time{})
}

// SumSince returns the sum of totals for transactions dated at or after
// since, in stored order.
func (l *Ledger) SumSince(ctx context.Context, userID int64, kind core.Kind, since time.Time) (core.Money, error) {
	txs, err := l.List(ctx, userID, kind)
	if err != nil {
		return core.Money{}, err
	}
	var sum int64
	for _, tx := range txs {
		if !tx.Date.Before(since) {
			sum += tx.Total.Cents
		}
	}
	return core.Money{Cents: sum}, nil
}

// newID derives an opaque unique id from the submission timestamp,
// suffixed when the same instant already produced one.
func newID(now time.Time, existing []core.Transaction) string {
	base := now.UTC().Format(time.RFC3339Nano)
	id := base
	for n := 2; taken(id, existing); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

func taken(id string, existing []core.Transaction) bool {
	for _, tx := range existing {
		if tx.ID == id {
			return true
		}
	}
	return false
}
