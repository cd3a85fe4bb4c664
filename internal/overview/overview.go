// Package overview builds the home page summary of a statement.
package overview

import (
	"log/slog"
	"time"

	"github.com/Veraticus/card-ledger/internal/cashback"
	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/window"
)

// Greeting returns a salutation for the time of day of now.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 6:
		return "Доброй ночи!"
	case hour < 12:
		return "Доброе утро!"
	case hour < 18:
		return "Добрый день!"
	default:
		return "Добрый вечер!"
	}
}

// Builder assembles overviews.
type Builder struct {
	policy cashback.Policy
	logger *slog.Logger
}

// NewBuilder creates a builder. A nil policy means the percentage policy;
// a nil logger means slog.Default().
func NewBuilder(logger *slog.Logger, policy cashback.Policy) *Builder {
	if policy == nil {
		policy = cashback.PercentagePolicy{}
	}
	return &Builder{policy: policy, logger: common.OrDefault(logger)}
}

// Build greets for now and summarizes cashback per card for every
// transaction dated at or before now.
func (b *Builder) Build(txns []model.Transaction, now time.Time) model.Overview {
	dated, undated := window.Until(txns, now)
	cards, withoutCard := cashback.Aggregate(dated)

	common.LogDebug(b.logger, "built overview", common.Fields{
		"transactions": len(txns),
		"included":     len(dated),
		"undated":      undated,
		"without_card": withoutCard,
		"cards":        len(cards),
		"policy":       b.policy.Name(),
	})

	return model.Overview{
		Greeting: Greeting(now),
		Cards:    b.policy.Apply(cards),
	}
}
