package core

import (
	"errors"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		ID:          "2025-08-30T12:00:00Z",
		Date:        time.Now(),
		Description: "Venda de 10 brigadeiros",
		Quantity:    1,
		UnitPrice:   Money{Cents: 5000},
		Total:       Money{Cents: 5000},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	t.Run("empty description", func(t *testing.T) {
		tx := valid
		tx.Description = "   "
		if err := tx.Validate(); !errors.Is(err, ErrEmptyDescription) {
			t.Errorf("expected ErrEmptyDescription, got %v", err)
		}
	})
	t.Run("non-positive total", func(t *testing.T) {
		tx := valid
		tx.Total = Money{}
		if err := tx.Validate(); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
	t.Run("missing id", func(t *testing.T) {
		tx := valid
		tx.ID = ""
		if err := tx.Validate(); err == nil {
			t.Error("expected error for empty id")
		}
	})
}

func TestGoalSetHelpers(t *testing.T) {
	var zero GoalSet
	if !zero.IsZero() {
		t.Error("zero GoalSet should report IsZero")
	}

	gs := GoalSet{Daily: Money{Cents: 10000}, Weekly: Money{Cents: 50000}}
	if gs.IsZero() {
		t.Error("configured GoalSet should not report IsZero")
	}
	if got := gs.Threshold(PeriodDaily).Cents; got != 10000 {
		t.Errorf("daily threshold = %d, want 10000", got)
	}
	if got := gs.Threshold(PeriodWeekly).Cents; got != 50000 {
		t.Errorf("weekly threshold = %d, want 50000", got)
	}
	if got := gs.Threshold(PeriodMonthly).Cents; got != 0 {
		t.Errorf("monthly threshold = %d, want 0", got)
	}

	clamped := GoalSet{Daily: Money{Cents: -100}, Weekly: Money{Cents: 200}}.Clamp()
	if clamped.Daily.Cents != 0 || clamped.Weekly.Cents != 200 {
		t.Errorf("Clamp gave %+v", clamped)
	}
}
