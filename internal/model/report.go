package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryReport is the total of one category over a date window.
type CategoryReport struct {
	Category      string
	Period        string
	TotalExpenses int64
}

// WeekdayTotal is the truncated sum of one weekday bucket.
type WeekdayTotal struct {
	Weekday time.Weekday
	Total   int64
}

// WeekdayReport groups totals by day of week, Monday first.
// Days without transactions are absent.
type WeekdayReport struct {
	Totals []WeekdayTotal
}

// SplitReport partitions a window into weekday and weekend totals.
type SplitReport struct {
	Period          string
	WeekdayExpenses int64
	WeekendExpenses int64
}

// Overview is the home page summary: a greeting and per-card cashback.
type Overview struct {
	Greeting string
	Cards    []CardSummary
}

// CategoryCashback is the cashback one category earned in a month.
type CategoryCashback struct {
	Category string
	Cashback decimal.Decimal
}

// CashbackCategories ranks categories by earned cashback for a month.
type CashbackCategories struct {
	Categories []CategoryCashback
	Year       int
	Month      time.Month
}

// PiggyBank is the amount an invest-by-rounding scheme would have saved.
type PiggyBank struct {
	Month         string
	SavedAmount   decimal.Decimal
	RoundingLimit int64
}
