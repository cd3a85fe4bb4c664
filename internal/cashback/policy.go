package cashback

import (
	"fmt"

	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Rate is the flat cashback rate of the percentage policy.
var Rate = decimal.RequireFromString("0.01")

// Floor returns total divided by 100, rounded toward negative infinity.
func Floor(total int64) int64 {
	q := total / 100
	if total%100 != 0 && total < 0 {
		q--
	}
	return q
}

// ApplyPercentage sets Cashback to 1% of TotalSpent on every card, or zero
// when the spend is negative. It modifies cards in place and returns it.
func ApplyPercentage(cards []model.CardSummary) []model.CardSummary {
	for i := range cards {
		cards[i].Cashback = percentage(cards[i].TotalSpent)
	}
	return cards
}

// WithPercentage is ApplyPercentage on a copy; cards is left untouched.
func WithPercentage(cards []model.CardSummary) []model.CardSummary {
	out := make([]model.CardSummary, len(cards))
	copy(out, cards)
	return ApplyPercentage(out)
}

func percentage(spent decimal.Decimal) decimal.Decimal {
	if spent.IsNegative() {
		return decimal.Zero
	}
	return spent.Mul(Rate)
}

// Policy computes cashback for card summaries.
type Policy interface {
	// Name identifies the policy in configuration.
	Name() string
	// Apply returns copies of cards with Cashback filled in.
	Apply(cards []model.CardSummary) []model.CardSummary
}

// PercentagePolicy pays 1% of spend.
type PercentagePolicy struct{}

// Name implements Policy.
func (PercentagePolicy) Name() string { return "percentage" }

// Apply implements Policy.
func (PercentagePolicy) Apply(cards []model.CardSummary) []model.CardSummary {
	return WithPercentage(cards)
}

// FloorPolicy pays one unit per whole hundred spent, using the integer part of the spend.
type FloorPolicy struct{}

// Name implements Policy.
func (FloorPolicy) Name() string { return "floor" }

// Apply implements Policy.
func (FloorPolicy) Apply(cards []model.CardSummary) []model.CardSummary {
	out := make([]model.CardSummary, len(cards))
	copy(out, cards)
	for i := range out {
		out[i].Cashback = decimal.NewFromInt(Floor(out[i].TotalSpent.IntPart()))
	}
	return out
}

// PolicyByName returns the policy registered under name.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case PercentagePolicy{}.Name():
		return PercentagePolicy{}, nil
	case FloorPolicy{}.Name():
		return FloorPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownPolicy, name)
	}
}
