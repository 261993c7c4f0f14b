package core

import (
	"errors"
	"strings"
	"time"
)

// Kind distinguishes the two ledgers each user owns.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Valid reports whether k names a known ledger kind.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

type (
	// Transaction is a single dated monetary entry. Transactions are
	// immutable after creation and append-only within a ledger. The
	// JSON field names match the stored schema and must not change.
	Transaction struct {
		ID          string    `json:"id"`
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
		Quantity    int       `json:"quantity"`
		UnitPrice   Money     `json:"unitPrice"`
		Total       Money     `json:"total"`
	}

	// GoalSet holds the three income thresholds a user aims for.
	// A zero value for a period means "no goal set", not a zero target.
	GoalSet struct {
		Daily   Money `json:"daily"`
		Weekly  Money `json:"weekly"`
		Monthly Money `json:"monthly"`
	}

	// Achievement is the one-shot event emitted when a goal threshold
	// is crossed for the first time within a period instance.
	Achievement struct {
		Period    Period `json:"period"`
		PeriodID  string `json:"periodId"`
		Threshold Money  `json:"threshold"`
		Total     Money  `json:"total"`
		Message   string `json:"message"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidKind      = errors.New("invalid ledger kind")
)

// Validate checks the invariants a freshly created transaction must hold.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction id cannot be empty")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date cannot be zero")
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if t.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	return t.Total.Validate()
}

// IsZero reports whether no goal is configured for any period.
func (g GoalSet) IsZero() bool {
	return g.Daily.IsZero() && g.Weekly.IsZero() && g.Monthly.IsZero()
}

// Threshold returns the configured threshold for the given period.
func (g GoalSet) Threshold(p Period) Money {
	switch p {
	case PeriodWeekly:
		return g.Weekly
	case PeriodMonthly:
		return g.Monthly
	default:
		return g.Daily
	}
}

// Clamp coerces negative thresholds to the zero sentinel.
func (g GoalSet) Clamp() GoalSet {
	if g.Daily.Cents < 0 {
		g.Daily = Money{}
	}
	if g.Weekly.Cents < 0 {
		g.Weekly = Money{}
	}
	if g.Monthly.Cents < 0 {
		g.Monthly = Money{}
	}
	return g
}
