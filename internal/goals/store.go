// Package goals holds the goal thresholds and the achievement
// evaluation that runs after each income entry.
package goals

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/store"
)

// Store persists the per-user GoalSet, replaced wholesale on save.
type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the persisted GoalSet, or the all-zero default when none
// was saved yet. A corrupt stored value propagates a store.DecodeError.
func (s *Store) Load(ctx context.Context, userID int64) (core.GoalSet, error) {
	var gs core.GoalSet
	if _, err := store.GetJSON(ctx, s.kv, store.GoalsKey(userID), &gs); err != nil {
		return core.GoalSet{}, err
	}
	return gs, nil
}

// Save replaces the user's GoalSet. Negative thresholds are coerced to
// the zero "no goal" sentinel before persisting.
func (s *Store) Save(ctx context.Context, userID int64, gs core.GoalSet) error {
	gs = gs.Clamp()
	if err := store.SetJSON(ctx, s.kv, store.GoalsKey(userID), gs); err != nil {
		return fmt.Errorf("persist goals: %w", err)
	}

	slog.InfoContext(ctx, "Goals saved",
		"user_id", userID,
		"daily_cents", gs.Daily.Cents,
		"weekly_cents", gs.Weekly.Cents,
		"monthly_cents", gs.Monthly.Cents)

	return nil
}
