package report

import (
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/window"
	"github.com/shopspring/decimal"
)

// Weekday sums amounts per day of week. A nil start includes every dated
// transaction; otherwise only those on or after start.
func (e *Engine) Weekday(txns []model.Transaction, start *time.Time) model.WeekdayReport {
	if start != nil {
		txns = window.From(txns, *start)
	} else {
		txns = window.Dated(txns)
	}

	var (
		sums [7]decimal.Decimal
		seen [7]bool
	)
	for _, txn := range txns {
		i := WeekdayIndex(txn.Date.Weekday())
		sums[i] = sums[i].Add(txn.Amount)
		seen[i] = true
	}

	report := model.WeekdayReport{Totals: make([]model.WeekdayTotal, 0, 7)}
	for i := range sums {
		if !seen[i] {
			continue
		}
		report.Totals = append(report.Totals, model.WeekdayTotal{
			Weekday: weekdayAt(i),
			Total:   truncate(sums[i]),
		})
	}
	return report
}

// WeekdayIndex numbers days from Monday=0 to Sunday=6.
func WeekdayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return WeekdayIndex(t.Weekday()) >= 5
}

func weekdayAt(index int) time.Weekday {
	return time.Weekday((index + 1) % 7)
}
