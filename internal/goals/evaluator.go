package goals

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/ledger"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

// Evaluator decides, after an income entry, whether a goal threshold
// was just crossed for the first time in its current period instance.
// At most one achievement fires per call, in daily, weekly, monthly
// priority order. The only durable effect of an evaluation is the
// achievement mark; the ledger and goal set are never mutated.
type Evaluator struct {
	goals  *Store
	ledger *ledger.Ledger
	kv     store.KV

	// message selection, replaceable in tests
	message func() string
}

// markRecord is what gets stored under a goal-met key. Only the key's
// presence matters for evaluation; the fields are informational.
type markRecord struct {
	AchievedAt time.Time  `json:"achievedAt"`
	Total      core.Money `json:"total"`
}

func NewEvaluator(goals *Store, led *ledger.Ledger, kv store.KV) *Evaluator {
	return &Evaluator{
		goals:   goals,
		ledger:  led,
		kv:      kv,
		message: pickMessage,
	}
}

// Evaluate computes the windowed income totals against the user's goals
// at the injected instant now. It returns the single achievement that
// newly fired, or nil when no period qualifies.
func (e *Evaluator) Evaluate(ctx context.Context, userID int64, now time.Time) (*core.Achievement, error) {
	gs, err := e.goals.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if gs.IsZero() {
		return nil, nil
	}

	for _, period := range core.Periods() {
		threshold := gs.Threshold(period)
		if threshold.Cents <= 0 {
			continue
		}

		total, err := e.ledger.SumSince(ctx, userID, core.KindIncome, period.StartOf(now))
		if err != nil {
			return nil, err
		}
		if total.Cents < threshold.Cents {
			continue
		}

		instanceID := period.InstanceID(now)
		markKey := store.GoalMetKey(period, userID, instanceID)
		_, marked, err := e.kv.Get(ctx, markKey)
		if err != nil {
			return nil, fmt.Errorf("check achievement mark: %w", err)
		}
		if marked {
			// Already celebrated this period instance.
			continue
		}

		mark := markRecord{AchievedAt: now, Total: total}
		if err := store.SetJSON(ctx, e.kv, markKey, mark); err != nil {
			return nil, fmt.Errorf("persist achievement mark: %w", err)
		}
		e.pruneMarks(ctx, userID, period, now)

		slog.InfoContext(ctx, "Goal achieved",
			"user_id", userID,
			"period", string(period),
			"period_id", instanceID,
			"threshold_cents", threshold.Cents,
			"total_cents", total.Cents)

		return &core.Achievement{
			Period:    period,
			PeriodID:  instanceID,
			Threshold: threshold,
			Total:     total,
			Message:   e.message(),
		}, nil
	}

	return nil, nil
}

// pruneMarks keeps only the marks for the current and previous period
// instance of the given kind, so marks do not accumulate forever.
// Pruning is best-effort: a failure never blocks the achievement.
func (e *Evaluator) pruneMarks(ctx context.Context, userID int64, period core.Period, now time.Time) {
	prefix := store.GoalMetPrefix(period, userID)
	keep := map[string]bool{
		prefix + period.InstanceID(now):         true,
		prefix + period.PreviousInstanceID(now): true,
	}

	keys, err := e.kv.Keys(ctx, prefix)
	if err != nil {
		slog.WarnContext(ctx, "Failed listing achievement marks for pruning",
			"user_id", userID, "period", string(period), "error", err)
		return
	}
	for _, key := range keys {
		if keep[key] {
			continue
		}
		if err := e.kv.Delete(ctx, key); err != nil {
			slog.WarnContext(ctx, "Failed pruning achievement mark",
				"key", key, "error", err)
		}
	}
}
