package goals

import (
	"context"
	"testing"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/ledger"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

type fixture struct {
	kv     *store.Memory
	goals  *Store
	ledger *ledger.Ledger
	eval   *Evaluator
}

func newFixture() *fixture {
	kv := store.NewMemory()
	gs := NewStore(kv)
	led := ledger.New(kv)
	return &fixture{kv: kv, goals: gs, ledger: led, eval: NewEvaluator(gs, led, kv)}
}

func (f *fixture) addIncome(t *testing.T, userID int64, amount string, at time.Time) {
	t.Helper()
	if _, err := f.ledger.Append(context.Background(), userID, core.KindIncome, "venda", amount, at); err != nil {
		t.Fatalf("append income: %v", err)
	}
}

func (f *fixture) setGoals(t *testing.T, userID int64, daily, weekly, monthly int64) {
	t.Helper()
	gs := core.GoalSet{
		Daily:   core.Money{Cents: daily},
		Weekly:  core.Money{Cents: weekly},
		Monthly: core.Money{Cents: monthly},
	}
	if err := f.goals.Save(context.Background(), userID, gs); err != nil {
		t.Fatalf("save goals: %v", err)
	}
}

// 2025-08-30 is a Saturday.
var saturday = time.Date(2025, 8, 30, 14, 0, 0, 0, time.Local)

func TestEvaluateNoGoalsConfigured(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addIncome(t, 1, "1000", saturday)

	ach, err := f.eval.Evaluate(ctx, 1, saturday)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ach != nil {
		t.Errorf("zero goal set must never fire, got %+v", ach)
	}
}

func TestEvaluateOncePerPeriod(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.setGoals(t, 1, 10000, 0, 0) // daily goal R$100

	// First addition: 60 < 100, no event.
	f.addIncome(t, 1, "60", saturday)
	ach, err := f.eval.Evaluate(ctx, 1, saturday)
	if err != nil || ach != nil {
		t.Fatalf("below threshold: ach=%+v err=%v", ach, err)
	}

	// Second addition crosses the threshold: exactly one event.
	later := saturday.Add(30 * time.Minute)
	f.addIncome(t, 1, "60", later)
	ach, err = f.eval.Evaluate(ctx, 1, later)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ach == nil || ach.Period != core.PeriodDaily {
		t.Fatalf("expected daily achievement, got %+v", ach)
	}
	if ach.PeriodID != "2025-08-30" {
		t.Errorf("period id = %q, want 2025-08-30", ach.PeriodID)
	}
	if ach.Total.Cents != 12000 || ach.Threshold.Cents != 10000 {
		t.Errorf("totals wrong: %+v", ach)
	}
	if ach.Message == "" {
		t.Error("achievement must carry a message")
	}

	// Third addition the same day: mark already set, no repeat.
	evenLater := saturday.Add(time.Hour)
	f.addIncome(t, 1, "60", evenLater)
	ach, err = f.eval.Evaluate(ctx, 1, evenLater)
	if err != nil || ach != nil {
		t.Fatalf("already marked: ach=%+v err=%v", ach, err)
	}

	// Next calendar day is a new period instance: fires again.
	sunday := saturday.AddDate(0, 0, 1)
	f.addIncome(t, 1, "150", sunday)
	ach, err = f.eval.Evaluate(ctx, 1, sunday)
	if err != nil {
		t.Fatalf("evaluate next day: %v", err)
	}
	if ach == nil || ach.PeriodID != "2025-08-31" {
		t.Fatalf("expected new daily achievement on 2025-08-31, got %+v", ach)
	}
}

func TestEvaluatePriorityDailyBeforeWeekly(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.setGoals(t, 1, 5000, 5000, 0)

	// One addition satisfies both unmet daily and weekly thresholds.
	f.addIncome(t, 1, "100", saturday)
	ach, err := f.eval.Evaluate(ctx, 1, saturday)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ach == nil || ach.Period != core.PeriodDaily {
		t.Fatalf("expected daily to win priority, got %+v", ach)
	}

	// The weekly goal is still unmarked and fires on the next call.
	f.addIncome(t, 1, "1", saturday.Add(time.Minute))
	ach, err = f.eval.Evaluate(ctx, 1, saturday.Add(time.Minute))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ach == nil || ach.Period != core.PeriodWeekly {
		t.Fatalf("expected weekly on second call, got %+v", ach)
	}
}

func TestEvaluateSundayUsesISOWeek(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.setGoals(t, 1, 0, 10000, 0) // weekly goal R$100

	// Income from the previous week must not count.
	previousSunday := time.Date(2025, 8, 24, 12, 0, 0, 0, time.Local)
	f.addIncome(t, 1, "90", previousSunday)

	// Tuesday and Sunday of the current ISO week (Mon 2025-08-25 start).
	tuesday := time.Date(2025, 8, 26, 12, 0, 0, 0, time.Local)
	sunday := time.Date(2025, 8, 31, 18, 0, 0, 0, time.Local)
	f.addIncome(t, 1, "60", tuesday)
	f.addIncome(t, 1, "60", sunday)

	ach, err := f.eval.Evaluate(ctx, 1, sunday)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ach == nil || ach.Period != core.PeriodWeekly {
		t.Fatalf("expected weekly achievement, got %+v", ach)
	}
	if ach.PeriodID != "2025-W35" {
		t.Errorf("period id = %q, want 2025-W35", ach.PeriodID)
	}
	if ach.Total.Cents != 12000 {
		t.Errorf("weekly total = %d, want 12000 (prior week excluded)", ach.Total.Cents)
	}
}

func TestEvaluateMonthlyGoal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.setGoals(t, 1, 0, 0, 20000)

	f.addIncome(t, 1, "150", time.Date(2025, 8, 5, 10, 0, 0, 0, time.Local))
	f.addIncome(t, 1, "60", saturday)

	ach, err := f.eval.Evaluate(ctx, 1, saturday)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ach == nil || ach.Period != core.PeriodMonthly || ach.PeriodID != "2025-8" {
		t.Fatalf("expected monthly achievement for 2025-8, got %+v", ach)
	}
}

func TestEvaluateDoesNotMutateLedgerOrGoals(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.setGoals(t, 1, 5000, 0, 0)
	f.addIncome(t, 1, "100", saturday)

	before, _ := f.ledger.List(ctx, 1, core.KindIncome)
	goalsBefore, _ := f.goals.Load(ctx, 1)

	if _, err := f.eval.Evaluate(ctx, 1, saturday); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	after, _ := f.ledger.List(ctx, 1, core.KindIncome)
	goalsAfter, _ := f.goals.Load(ctx, 1)
	if len(after) != len(before) {
		t.Error("evaluation mutated the ledger")
	}
	if goalsAfter != goalsBefore {
		t.Error("evaluation mutated the goal set")
	}
}

func TestEvaluatePrunesOldMarks(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.setGoals(t, 1, 5000, 0, 0)

	// Stale marks from long-gone days.
	for _, id := range []string{"2025-01-01", "2025-03-15", "2025-08-29"} {
		if err := f.kv.Set(ctx, store.GoalMetKey(core.PeriodDaily, 1, id), []byte("true")); err != nil {
			t.Fatal(err)
		}
	}

	f.addIncome(t, 1, "100", saturday)
	if _, err := f.eval.Evaluate(ctx, 1, saturday); err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	keys, err := f.kv.Keys(ctx, store.GoalMetPrefix(core.PeriodDaily, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		store.GoalMetKey(core.PeriodDaily, 1, "2025-08-29"), // previous instance kept
		store.GoalMetKey(core.PeriodDaily, 1, "2025-08-30"), // current
	}
	if len(keys) != len(want) || keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("marks after pruning = %v, want %v", keys, want)
	}
}

func TestEvaluateCorruptGoalsPropagates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	if err := f.kv.Set(ctx, store.GoalsKey(1), []byte("][")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.eval.Evaluate(ctx, 1, saturday); !store.IsDecodeError(err) {
		t.Errorf("expected DecodeError, got %v", err)
	}
}
