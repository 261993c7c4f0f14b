package amqp

import (
	"encoding/json"
	"time"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
)

// AchievementMessage carries a fired goal achievement to the notifier
// worker. It is self-contained: consumers do not need store access.
type AchievementMessage struct {
	UserID         int64     `json:"userId"`
	Period         string    `json:"period"`
	PeriodID       string    `json:"periodId"`
	ThresholdCents int64     `json:"thresholdCents"`
	TotalCents     int64     `json:"totalCents"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewAchievementMessage builds a message from a fired achievement.
func NewAchievementMessage(userID int64, a core.Achievement) *AchievementMessage {
	return &AchievementMessage{
		UserID:         userID,
		Period:         string(a.Period),
		PeriodID:       a.PeriodID,
		ThresholdCents: a.Threshold.Cents,
		TotalCents:     a.Total.Cents,
		Message:        a.Message,
		Timestamp:      time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *AchievementMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// AchievementMessageFromJSON creates a message from JSON bytes.
func AchievementMessageFromJSON(data []byte) (*AchievementMessage, error) {
	var msg AchievementMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
