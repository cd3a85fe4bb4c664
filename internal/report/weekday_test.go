package report

import (
	"testing"
	"time"

	"github.com/Veraticus/card-ledger/internal/model"
	"github.com/Veraticus/card-ledger/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEngine_Weekday(t *testing.T) {
	got := NewEngine().Weekday(testutil.ThreeDayLedger(t), nil)

	assert.Equal(t, model.WeekdayReport{Totals: []model.WeekdayTotal{
		{Weekday: time.Wednesday, Total: 100},
		{Weekday: time.Thursday, Total: 50},
		{Weekday: time.Friday, Total: 200},
	}}, got)
}

func TestEngine_Weekday_StartDate(t *testing.T) {
	start := testutil.Date(t, "2020-01-02")

	got := NewEngine().Weekday(testutil.ThreeDayLedger(t), &start)

	assert.Equal(t, []model.WeekdayTotal{
		{Weekday: time.Thursday, Total: 50},
		{Weekday: time.Friday, Total: 200},
	}, got.Totals)
}

func TestEngine_Weekday_GroupsAndOrders(t *testing.T) {
	txns := testutil.NewLedger(t).
		Add("2024-07-14", "-10.9"). // Sunday
		Add("2024-07-08", "-5.5").  // Monday
		Add("2024-07-15", "-4.6").  // Monday
		Add("2024-07-13", "7").     // Saturday
		Add("", "-1000").           // undated
		Build()

	got := NewEngine().Weekday(txns, nil)

	assert.Equal(t, []model.WeekdayTotal{
		{Weekday: time.Monday, Total: -10},
		{Weekday: time.Saturday, Total: 7},
		{Weekday: time.Sunday, Total: -10},
	}, got.Totals)
}

func TestEngine_Weekday_Empty(t *testing.T) {
	got := NewEngine().Weekday(nil, nil)

	assert.Empty(t, got.Totals)
}
