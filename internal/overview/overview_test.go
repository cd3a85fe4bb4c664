package overview

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/Veraticus/card-ledger/internal/cashback"
	"github.com/Veraticus/card-ledger/internal/common"
	"github.com/Veraticus/card-ledger/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		now  string
		want string
	}{
		{now: "2021-12-31 00:00:00", want: "Доброй ночи!"},
		{now: "2021-12-31 05:59:59", want: "Доброй ночи!"},
		{now: "2021-12-31 06:00:00", want: "Доброе утро!"},
		{now: "2021-12-31 11:59:59", want: "Доброе утро!"},
		{now: "2021-12-31 12:00:00", want: "Добрый день!"},
		{now: "2021-12-31 17:59:59", want: "Добрый день!"},
		{now: "2021-12-31 18:00:00", want: "Добрый вечер!"},
		{now: "2021-12-31 23:59:59", want: "Добрый вечер!"},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			assert.Equal(t, tt.want, Greeting(testutil.Date(t, tt.now)))
		})
	}
}

func TestBuilder_Build(t *testing.T) {
	txns := testutil.NewLedger(t).
		Add("2021-12-01 10:00:00", "-1000", testutil.Card("1234567890123456"), testutil.Bonus("10")).
		Add("2021-12-31 12:00:00", "-500", testutil.Card("1234567890123456")).
		Add("2021-12-31 12:00:01", "-9999", testutil.Card("1234567890123456")).
		Add("2021-12-15 09:00:00", "-200", testutil.Card("*7197")).
		Add("2021-12-15 09:00:00", "-300").
		Add("", "-400", testutil.Card("*7197")).
		Build()

	var logs bytes.Buffer
	logger, err := common.NewLogger(&logs, slog.LevelDebug, "json")
	require.NoError(t, err)

	got := NewBuilder(logger, nil).Build(txns, testutil.Date(t, "2021-12-31 12:00:00"))

	assert.Equal(t, "Добрый день!", got.Greeting)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, "3456", got.Cards[0].LastDigits)
	assert.True(t, decimal.NewFromInt(1500).Equal(got.Cards[0].TotalSpent))
	assert.True(t, decimal.NewFromInt(15).Equal(got.Cards[0].Cashback))
	assert.True(t, decimal.NewFromInt(10).Equal(got.Cards[0].AccruedCashback))
	assert.Equal(t, "7197", got.Cards[1].LastDigits)
	assert.True(t, decimal.NewFromInt(2).Equal(got.Cards[1].Cashback))

	assert.Contains(t, logs.String(), `"undated":1`)
	assert.Contains(t, logs.String(), `"without_card":1`)
}

func TestBuilder_FloorPolicy(t *testing.T) {
	txns := testutil.NewLedger(t).
		Add("2021-12-01", "-1999", testutil.Card("0001")).
		Build()

	got := NewBuilder(nil, cashback.FloorPolicy{}).Build(txns, time.Date(2022, time.January, 1, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, "Добрый вечер!", got.Greeting)
	require.Len(t, got.Cards, 1)
	assert.True(t, decimal.NewFromInt(19).Equal(got.Cards[0].Cashback))
}
