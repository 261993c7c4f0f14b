// Package services orchestrates the domain operations behind the HTTP
// handlers: ledger appends, goal evaluation, notification publishing
// and the business profile.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/goals"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/ledger"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

// AchievementPublisher forwards fired achievements to the notifier
// queue. Satisfied by *amqp.Client.
type AchievementPublisher interface {
	PublishAchievement(ctx context.Context, userID int64, a core.Achievement) error
}

// FinanceService ties the ledgers, the goal store and the evaluator
// together. All operations are synchronous: each one runs to completion
// against the store before the next user action is processed.
type FinanceService struct {
	ledger    *ledger.Ledger
	goals     *goals.Store
	evaluator *goals.Evaluator
	publisher AchievementPublisher

	now func() time.Time
}

func NewFinanceService(kv store.KV, publisher AchievementPublisher) *FinanceService {
	led := ledger.New(kv)
	gs := goals.NewStore(kv)
	return &FinanceService{
		ledger:    led,
		goals:     gs,
		evaluator: goals.NewEvaluator(gs, led, kv),
		publisher: publisher,
		now:       time.Now,
	}
}

// AddExpense appends a dated expense to the user's expense ledger.
func (s *FinanceService) AddExpense(ctx context.Context, userID int64, description, amount string) (core.Transaction, error) {
	return s.ledger.Append(ctx, userID, core.KindExpense, description, amount, s.now())
}

// AddIncome appends an income entry and then runs the goal evaluation.
// When an achievement fires it is published for the notifier; publish
// failures are logged and never fail the income submission, which is
// already persisted at that point.
func (s *FinanceService) AddIncome(ctx context.Context, userID int64, description, amount string) (core.Transaction, *core.Achievement, error) {
	now := s.now()
	tx, err := s.ledger.Append(ctx, userID, core.KindIncome, description, amount, now)
	if err != nil {
		return core.Transaction{}, nil, err
	}

	ach, err := s.evaluator.Evaluate(ctx, userID, now)
	if err != nil {
		// The income is saved; a failed evaluation only loses the
		// notification for this call.
		slog.ErrorContext(ctx, "Goal evaluation failed after income append",
			"user_id", userID, "transaction_id", tx.ID, "error", err)
		return tx, nil, nil
	}

	if ach != nil && s.publisher != nil {
		if err := s.publisher.PublishAchievement(ctx, userID, *ach); err != nil {
			slog.ErrorContext(ctx, "Failed to publish achievement",
				"user_id", userID, "period", string(ach.Period), "error", err)
		}
	}

	return tx, ach, nil
}

// Transactions lists a user's ledger of the given kind.
func (s *FinanceService) Transactions(ctx context.Context, userID int64, kind core.Kind) ([]core.Transaction, error) {
	return s.ledger.List(ctx, userID, kind)
}

// Goals returns the user's configured goal set.
func (s *FinanceService) Goals(ctx context.Context, userID int64) (core.GoalSet, error) {
	return s.goals.Load(ctx, userID)
}

// SaveGoals parses and persists the three thresholds with
// numeric-or-zero semantics: unparseable entries become the sentinel 0.
func (s *FinanceService) SaveGoals(ctx context.Context, userID int64, daily, weekly, monthly string) (core.GoalSet, error) {
	gs := core.GoalSet{
		Daily:   core.Money{Cents: core.ParseGoalToCents(daily)},
		Weekly:  core.Money{Cents: core.ParseGoalToCents(weekly)},
		Monthly: core.Money{Cents: core.ParseGoalToCents(monthly)},
	}
	if err := s.goals.Save(ctx, userID, gs); err != nil {
		return core.GoalSet{}, err
	}
	return gs, nil
}

// PeriodProgress is the dashboard view of one goal period.
type PeriodProgress struct {
	Period    core.Period `json:"period"`
	PeriodID  string      `json:"periodId"`
	Threshold core.Money  `json:"threshold"`
	Total     core.Money  `json:"total"`
	Met       bool        `json:"met"`
}

// Summary aggregates everything the dashboard shows.
type Summary struct {
	TotalExpenses core.Money       `json:"totalExpenses"`
	TotalIncome   core.Money       `json:"totalIncome"`
	Goals         core.GoalSet     `json:"goals"`
	Progress      []PeriodProgress `json:"progress"`
}

// Summary computes full-ledger totals and the windowed goal progress
// for the instant now.
func (s *FinanceService) Summary(ctx context.Context, userID int64) (Summary, error) {
	now := s.now()

	expenses, err := s.ledger.SumAll(ctx, userID, core.KindExpense)
	if err != nil {
		return Summary{}, err
	}
	income, err := s.ledger.SumAll(ctx, userID, core.KindIncome)
	if err != nil {
		return Summary{}, err
	}
	gs, err := s.goals.Load(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{TotalExpenses: expenses, TotalIncome: income, Goals: gs}
	for _, period := range core.Periods() {
		threshold := gs.Threshold(period)
		total, err := s.ledger.SumSince(ctx, userID, core.KindIncome, period.StartOf(now))
		if err != nil {
			return Summary{}, err
		}
		sum.Progress = append(sum.Progress, PeriodProgress{
			Period:    period,
			PeriodID:  period.InstanceID(now),
			Threshold: threshold,
			Total:     total,
			Met:       threshold.Cents > 0 && total.Cents >= threshold.Cents,
		})
	}
	return sum, nil
}
