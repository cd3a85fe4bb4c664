// Package insights computes the monthly cashback and savings services.
package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/card-ledger/internal/cashback"
	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// MonthLayout is the "YYYY-MM" month format.
const MonthLayout = "2006-01"

// RoundingLimits are the accepted piggy bank rounding steps.
var RoundingLimits = []int64{10, 50, 100}

// inMonth reports whether t falls in the given calendar month.
func inMonth(t time.Time, year int, month time.Month) bool {
	return !t.IsZero() && t.Year() == year && t.Month() == month
}

// CashbackCategories ranks the categories of one month by the cashback
// their spend earned: the percentage rate on spend plus any issuer bonus.
// Categories compare trimmed and lower-cased; uncategorized spend is ignored.
func CashbackCategories(txns []model.Transaction, year int, month time.Month) model.CashbackCategories {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if !txn.IsSpend() || !inMonth(txn.Date, year, month) {
			continue
		}
		category := strings.ToLower(strings.TrimSpace(txn.Category))
		if category == "" {
			continue
		}

		earned := txn.Spend().Mul(cashback.Rate)
		if txn.CashbackBonus != nil {
			earned = earned.Add(*txn.CashbackBonus)
		}
		totals[category] = totals[category].Add(earned)
	}

	ranked := make([]model.CategoryCashback, 0, len(totals))
	for category, total := range totals {
		ranked = append(ranked, model.CategoryCashback{Category: category, Cashback: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Cashback.Cmp(ranked[j].Cashback); c != 0 {
			return c > 0
		}
		return ranked[i].Category < ranked[j].Category
	})

	return model.CashbackCategories{Year: year, Month: month, Categories: ranked}
}

// PiggyBank rounds every spend of month up to the next multiple of limit and
// totals the difference that would have gone to savings.
func PiggyBank(txns []model.Transaction, month string, limit int64) (model.PiggyBank, error) {
	first, err := time.Parse(MonthLayout, month)
	if err != nil {
		return model.PiggyBank{}, fmt.Errorf("%w: month %q", common.ErrInvalidConfig, month)
	}
	if !validLimit(limit) {
		return model.PiggyBank{}, fmt.Errorf("%w: rounding limit %d (want one of %v)", common.ErrInvalidConfig, limit, RoundingLimits)
	}

	step := decimal.NewFromInt(limit)
	saved := decimal.Zero
	for _, txn := range txns {
		if !txn.IsSpend() || !inMonth(txn.Date, first.Year(), first.Month()) {
			continue
		}
		spend := txn.Spend()
		rounded := spend.Div(step).Ceil().Mul(step)
		saved = saved.Add(rounded.Sub(spend))
	}

	return model.PiggyBank{Month: month, RoundingLimit: limit, SavedAmount: saved}, nil
}

func validLimit(limit int64) bool {
	for _, l := range RoundingLimits {
		if l == limit {
			return true
		}
	}
	return false
}
