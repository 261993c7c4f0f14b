// Package worker runs the notifier that turns achievement messages into
// celebration log lines and optional spreadsheet rows.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/amqp"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/auth"
	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/sheets"
)

// AchievementConsumer is the inbound side of the achievement queue.
type AchievementConsumer interface {
	ConsumeAchievements(ctx context.Context, handler func(*amqp.AchievementMessage) error) error
}

// Notifier consumes achievement messages and records them. The sheet
// writer is optional; without it the notifier only logs.
type Notifier struct {
	consumer AchievementConsumer
	writer   sheets.AchievementWriter
}

func NewNotifier(consumer AchievementConsumer, writer sheets.AchievementWriter) *Notifier {
	return &Notifier{
		consumer: consumer,
		writer:   writer,
	}
}

// Run consumes until the context is cancelled.
func (n *Notifier) Run(ctx context.Context) error {
	return n.consumer.ConsumeAchievements(ctx, func(msg *amqp.AchievementMessage) error {
		return n.Handle(ctx, msg)
	})
}

// Handle records a single achievement. A sheet append failure is
// returned so the delivery gets redelivered once.
func (n *Notifier) Handle(ctx context.Context, msg *amqp.AchievementMessage) error {
	email := "unknown"
	if user, ok := auth.Lookup(msg.UserID); ok {
		email = user.Email
	}

	slog.InfoContext(ctx, "Goal achieved",
		"user_id", msg.UserID,
		"email", email,
		"period", msg.Period,
		"period_id", msg.PeriodID,
		"threshold_cents", msg.ThresholdCents,
		"total_cents", msg.TotalCents,
		"message", msg.Message)

	if n.writer == nil {
		return nil
	}

	rowRef, err := n.writer.Append(ctx, *msg)
	if err != nil {
		return fmt.Errorf("append achievement to sheet: %w", err)
	}
	slog.InfoContext(ctx, "Achievement logged to sheet", "row_ref", rowRef)
	return nil
}
