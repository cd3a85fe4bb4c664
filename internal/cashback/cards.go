// Package cashback groups spend by card and computes cashback on it.
package cashback

import (
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// CardFields are the row keys card aggregation reads.
var CardFields = []model.Field{model.FieldAmount}

// Aggregate groups transactions by the last four characters of their card
// identifier, in first-seen order. Spend is rounded to one decimal place per
// transaction before it is summed. Transactions without a card are skipped and
// counted.
func Aggregate(txns []model.Transaction) ([]model.CardSummary, int) {
	var (
		order   []string
		cards   = make(map[string]*model.CardSummary)
		skipped int
	)

	for _, txn := range txns {
		if txn.CardNumber == "" {
			skipped++
			continue
		}

		key := txn.LastDigits()
		card, ok := cards[key]
		if !ok {
			card = &model.CardSummary{
				LastDigits:      key,
				TotalSpent:      decimal.Zero,
				AccruedCashback: decimal.Zero,
				Cashback:        decimal.Zero,
			}
			cards[key] = card
			order = append(order, key)
		}

		if txn.IsSpend() {
			card.TotalSpent = card.TotalSpent.Add(txn.Spend().RoundBank(1))
		}
		if txn.CashbackBonus != nil {
			card.AccruedCashback = card.AccruedCashback.Add(*txn.CashbackBonus)
		}
	}

	summaries := make([]model.CardSummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, *cards[key])
	}
	return summaries, skipped
}
