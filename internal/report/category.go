package report

import (
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Category totals the amounts of one category over [start, start+window].
// The category label in the report is the one asked for.
func (e *Engine) Category(txns []model.Transaction, category string, start time.Time) model.CategoryReport {
	r := e.Window(start)

	total := decimal.Zero
	for _, txn := range r.Filter(txns) {
		if e.sameCategory(txn.Category, category) {
			total = total.Add(txn.Amount)
		}
	}

	return model.CategoryReport{
		Category:      category,
		TotalExpenses: truncate(total),
		Period:        r.Period(),
	}
}
