package sheets

import (
	"context"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/amqp"
)

// Ports for outbound adapters.
type (
	// AchievementWriter appends a goal achievement row to an external log.
	AchievementWriter interface {
		Append(ctx context.Context, msg amqp.AchievementMessage) (rowRef string, err error)
	}
)
