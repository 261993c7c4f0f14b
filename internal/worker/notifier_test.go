package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/amqp"
)

type fakeConsumer struct {
	messages []*amqp.AchievementMessage
	handled  int
	failed   int
}

func (f *fakeConsumer) ConsumeAchievements(ctx context.Context, handler func(*amqp.AchievementMessage) error) error {
	for _, msg := range f.messages {
		if err := handler(msg); err != nil {
			f.failed++
			continue
		}
		f.handled++
	}
	return nil
}

type fakeWriter struct {
	appended []amqp.AchievementMessage
	err      error
}

func (f *fakeWriter) Append(_ context.Context, msg amqp.AchievementMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.appended = append(f.appended, msg)
	return "Conquistas!A2:G2", nil
}

func testMessage(userID int64) *amqp.AchievementMessage {
	return &amqp.AchievementMessage{
		UserID:         userID,
		Period:         "daily",
		PeriodID:       "2025-08-30",
		ThresholdCents: 5000,
		TotalCents:     7500,
		Message:        "Parabéns! Você bateu sua meta diária!",
		Timestamp:      time.Date(2025, 8, 30, 15, 0, 0, 0, time.UTC),
	}
}

func TestNotifierAppendsToSheet(t *testing.T) {
	consumer := &fakeConsumer{messages: []*amqp.AchievementMessage{testMessage(1), testMessage(2)}}
	writer := &fakeWriter{}

	notifier := NewNotifier(consumer, writer)
	if err := notifier.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if consumer.handled != 2 {
		t.Errorf("handled = %d, want 2", consumer.handled)
	}
	if len(writer.appended) != 2 {
		t.Fatalf("appended = %d rows, want 2", len(writer.appended))
	}
	if writer.appended[0].UserID != 1 || writer.appended[1].UserID != 2 {
		t.Errorf("appended user ids = %d, %d", writer.appended[0].UserID, writer.appended[1].UserID)
	}
}

func TestNotifierWithoutWriterOnlyLogs(t *testing.T) {
	consumer := &fakeConsumer{messages: []*amqp.AchievementMessage{testMessage(1)}}

	notifier := NewNotifier(consumer, nil)
	if err := notifier.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if consumer.handled != 1 {
		t.Errorf("handled = %d, want 1", consumer.handled)
	}
}

func TestNotifierPropagatesWriterFailure(t *testing.T) {
	consumer := &fakeConsumer{messages: []*amqp.AchievementMessage{testMessage(1)}}
	writer := &fakeWriter{err: errors.New("quota exceeded")}

	notifier := NewNotifier(consumer, writer)
	if err := notifier.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if consumer.failed != 1 {
		t.Errorf("failed = %d, want 1", consumer.failed)
	}
}

func TestNotifierHandlesUnknownUser(t *testing.T) {
	consumer := &fakeConsumer{messages: []*amqp.AchievementMessage{testMessage(99)}}
	writer := &fakeWriter{}

	notifier := NewNotifier(consumer, writer)
	if err := notifier.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if consumer.handled != 1 {
		t.Errorf("handled = %d, want 1", consumer.handled)
	}
}
