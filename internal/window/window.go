// Package window selects transactions by date.
package window

import (
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
)

// DateLayout is the calendar date format used in report periods.
const DateLayout = "2006-01-02"

// DefaultDays is the length of a reporting window in days.
const DefaultDays = 90

// Range is a window of calendar days, inclusive on both ends.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange returns the window [start, start+days]. Time of day on start is ignored.
func NewRange(start time.Time, days int) Range {
	day := Day(start)
	return Range{
		Start: day,
		End:   day.AddDate(0, 0, days),
	}
}

// Contains reports whether t falls on a day inside the range.
// Undated times are never contained.
func (r Range) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	day := Day(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// Filter returns the transactions dated inside the range, in their original order.
func (r Range) Filter(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if r.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return out
}

// Period renders the range as "YYYY-MM-DD to YYYY-MM-DD".
func (r Range) Period() string {
	return r.Start.Format(DateLayout) + " to " + r.End.Format(DateLayout)
}

// Until returns the transactions dated at or before cutoff, in their original order,
// along with the number of undated transactions that were dropped.
func Until(txns []model.Transaction, cutoff time.Time) ([]model.Transaction, int) {
	out := make([]model.Transaction, 0, len(txns))
	undated := 0
	for _, txn := range txns {
		if !txn.HasDate() {
			undated++
			continue
		}
		if !txn.Date.After(cutoff) {
			out = append(out, txn)
		}
	}
	return out, undated
}

// From returns the dated transactions on or after the calendar day of start.
func From(txns []model.Transaction, start time.Time) []model.Transaction {
	first := Day(start)
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.HasDate() && !Day(txn.Date).Before(first) {
			out = append(out, txn)
		}
	}
	return out
}

// Dated returns the transactions that carry a date.
func Dated(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.HasDate() {
			out = append(out, txn)
		}
	}
	return out
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDay parses a "YYYY-MM-DD" calendar date.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
