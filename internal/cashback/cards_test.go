package cashback

import (
	"testing"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregate(t *testing.T) {
	txns := testutil.NewLedger(t).
		Add("2021-12-01", "-1000", testutil.Card("1234567890123456"), testutil.Bonus("10")).
		Add("2021-12-02", "-500", testutil.Card("1234567890123456"), testutil.Bonus("5")).
		Add("2021-12-03", "-300", testutil.Card("1234567890123456")).
		Add("2021-12-04", "-200").
		Build()

	cards, skipped := Aggregate(txns)

	require.Len(t, cards, 1)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "3456", cards[0].LastDigits)
	assert.True(t, dec("1800").Equal(cards[0].TotalSpent))
	assert.True(t, dec("15").Equal(cards[0].AccruedCashback))
	assert.True(t, cards[0].Cashback.IsZero())
}

func TestAggregate_MergesBySuffix(t *testing.T) {
	txns := testutil.NewLedger(t).
		Add("2021-12-01", "-100", testutil.Card("4000111122223333")).
		Add("2021-12-02", "-50", testutil.Card("*5555")).
		Add("2021-12-03", "-25", testutil.Card("5100999988883333")).
		Build()

	cards, _ := Aggregate(txns)

	require.Len(t, cards, 2)
	assert.Equal(t, "3333", cards[0].LastDigits)
	assert.True(t, dec("125").Equal(cards[0].TotalSpent))
	assert.Equal(t, "5555", cards[1].LastDigits)
}

func TestAggregate_OnlySpendCounts(t *testing.T) {
	txns := testutil.NewLedger(t).
		Add("2021-12-01", "5046", testutil.Card("*7197"), testutil.Bonus("0")).
		Add("2021-12-02", "-160.89", testutil.Card("*7197"), testutil.Bonus("3")).
		Add("2021-12-03", "-64.05", testutil.Card("*7197"), testutil.Bonus("-1")).
		Build()

	cards, skipped := Aggregate(txns)

	require.Len(t, cards, 1)
	assert.Zero(t, skipped)
	assert.True(t, dec("224.9").Equal(cards[0].TotalSpent), cards[0].TotalSpent.String())
	assert.True(t, dec("2").Equal(cards[0].AccruedCashback))
}

func TestAggregate_RoundsEachSpend(t *testing.T) {
	txns := []model.Transaction{
		{CardNumber: "0001", Amount: dec("-0.25")},
		{CardNumber: "0001", Amount: dec("-0.35")},
		{CardNumber: "0001", Amount: dec("-10.04")},
	}

	cards, _ := Aggregate(txns)

	require.Len(t, cards, 1)
	assert.Equal(t, "10.6", cards[0].TotalSpent.String())
}

func TestAggregate_Empty(t *testing.T) {
	cards, skipped := Aggregate(nil)

	assert.Empty(t, cards)
	assert.Zero(t, skipped)
}
