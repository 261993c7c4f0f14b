package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

type recordingPublisher struct {
	published []core.Achievement
	fail      bool
}

func (p *recordingPublisher) PublishAchievement(_ context.Context, _ int64, a core.Achievement) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.published = append(p.published, a)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2025, 8, 30, 14, 0, 0, 0, time.Local)

func TestAddIncomePublishesAchievement(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	pub := &recordingPublisher{}
	svc := NewFinanceService(kv, pub)
	svc.now = fixedClock(testNow)

	if _, err := svc.SaveGoals(ctx, 1, "100", "", ""); err != nil {
		t.Fatalf("save goals: %v", err)
	}

	tx, ach, err := svc.AddIncome(ctx, 1, "feira de sábado", "120")
	if err != nil {
		t.Fatalf("add income: %v", err)
	}
	if tx.Total.Cents != 12000 {
		t.Errorf("total = %d, want 12000", tx.Total.Cents)
	}
	if ach == nil || ach.Period != core.PeriodDaily {
		t.Fatalf("expected daily achievement, got %+v", ach)
	}
	if len(pub.published) != 1 || pub.published[0].PeriodID != "2025-08-30" {
		t.Errorf("published = %+v", pub.published)
	}
}

func TestAddIncomePublishFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()
	svc := NewFinanceService(store.NewMemory(), &recordingPublisher{fail: true})
	svc.now = fixedClock(testNow)

	if _, err := svc.SaveGoals(ctx, 1, "50", "", ""); err != nil {
		t.Fatal(err)
	}
	tx, ach, err := svc.AddIncome(ctx, 1, "venda", "60")
	if err != nil {
		t.Fatalf("income must succeed despite publish failure: %v", err)
	}
	if tx.ID == "" || ach == nil {
		t.Errorf("tx=%+v ach=%+v", tx, ach)
	}
}

func TestAddIncomeWithoutPublisher(t *testing.T) {
	ctx := context.Background()
	svc := NewFinanceService(store.NewMemory(), nil)
	svc.now = fixedClock(testNow)

	if _, err := svc.SaveGoals(ctx, 1, "50", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, ach, err := svc.AddIncome(ctx, 1, "venda", "60"); err != nil || ach == nil {
		t.Fatalf("nil publisher must be tolerated: ach=%+v err=%v", ach, err)
	}
}

func TestSaveGoalsCoercion(t *testing.T) {
	ctx := context.Background()
	svc := NewFinanceService(store.NewMemory(), nil)

	gs, err := svc.SaveGoals(ctx, 1, "150,50", "abc", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if gs.Daily.Cents != 15050 || gs.Weekly.Cents != 0 || gs.Monthly.Cents != 0 {
		t.Errorf("coercion gave %+v", gs)
	}

	loaded, err := svc.Goals(ctx, 1)
	if err != nil || loaded != gs {
		t.Errorf("reload gave %+v, err=%v", loaded, err)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewFinanceService(store.NewMemory(), nil)
	svc.now = fixedClock(testNow)

	if _, err := svc.AddExpense(ctx, 1, "embalagens", "30"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SaveGoals(ctx, 1, "100", "500", ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.AddIncome(ctx, 1, "vendas", "120"); err != nil {
		t.Fatal(err)
	}

	sum, err := svc.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalExpenses.Cents != 3000 || sum.TotalIncome.Cents != 12000 {
		t.Errorf("totals = %+v", sum)
	}
	if len(sum.Progress) != 3 {
		t.Fatalf("expected 3 period entries, got %d", len(sum.Progress))
	}
	daily, weekly, monthly := sum.Progress[0], sum.Progress[1], sum.Progress[2]
	if daily.Period != core.PeriodDaily || !daily.Met || daily.Total.Cents != 12000 {
		t.Errorf("daily progress = %+v", daily)
	}
	if weekly.Period != core.PeriodWeekly || weekly.Met {
		t.Errorf("weekly progress = %+v (threshold 500 not met by 120)", weekly)
	}
	if monthly.Met || monthly.Threshold.Cents != 0 {
		t.Errorf("monthly progress = %+v (no goal set)", monthly)
	}
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	p := NewProfileService(store.NewMemory())

	if _, found, err := p.BusinessType(ctx, 1); err != nil || found {
		t.Fatalf("unset: found=%v err=%v", found, err)
	}
	if err := p.SetBusinessType(ctx, 1, "   "); !errors.Is(err, ErrEmptyBusinessType) {
		t.Fatalf("expected ErrEmptyBusinessType, got %v", err)
	}
	if err := p.SetBusinessType(ctx, 1, "  Brigadeiros "); err != nil {
		t.Fatal(err)
	}
	got, found, err := p.BusinessType(ctx, 1)
	if err != nil || !found || got != "Brigadeiros" {
		t.Errorf("got %q found=%v err=%v", got, found, err)
	}
}
