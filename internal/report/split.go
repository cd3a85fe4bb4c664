package report

import (
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Split partitions [start, start+window] into weekday and weekend totals.
func (e *Engine) Split(txns []model.Transaction, start time.Time) model.SplitReport {
	r := e.Window(start)

	weekday, weekend := decimal.Zero, decimal.Zero
	for _, txn := range r.Filter(txns) {
		if IsWeekend(txn.Date) {
			weekend = weekend.Add(txn.Amount)
		} else {
			weekday = weekday.Add(txn.Amount)
		}
	}

	return model.SplitReport{
		WeekdayExpenses: truncate(weekday),
		WeekendExpenses: truncate(weekend),
		Period:          r.Period(),
	}
}
